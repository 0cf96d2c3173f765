package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the MusoBuddy application
// Pattern: musobuddy:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_LONG  = 24 * time.Hour // 24 hours - for very stable data
	TTL_STATIC_SHORT = 6 * time.Hour  // 6 hours - for user profiles
)

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // 2 hours - for client records
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // 15 minutes - for upcoming gigs
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // 10 minutes - for booking listings
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // 5 minutes - for conflict scans
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "musobuddy"
)

// ================== BOOKINGS MODULE ==================

// Booking Cache Keys
const (
	CACHE_KEY_USER_BOOKINGS  = CACHE_PREFIX + ":bookings:user:uuid:"      // + user-id:page:X
	CACHE_KEY_BOOKING_DETAIL = CACHE_PREFIX + ":bookings:detail:uuid:"    // + booking-id
	CACHE_KEY_USER_CONFLICTS = CACHE_PREFIX + ":bookings:conflicts:user:" // + user-id
)

// Booking Cache TTLs
const (
	TTL_USER_BOOKINGS  = TTL_DYNAMIC_MEDIUM // 10 minutes
	TTL_BOOKING_DETAIL = TTL_DYNAMIC_MEDIUM // 10 minutes
	TTL_CONFLICT_SCAN  = TTL_DYNAMIC_SHORT  // 5 minutes
)

// ================== CLIENTS MODULE ==================

// Client Cache Keys
const (
	CACHE_KEY_USER_CLIENTS  = CACHE_PREFIX + ":clients:user:uuid:"   // + user-id:page:X
	CACHE_KEY_CLIENT_DETAIL = CACHE_PREFIX + ":clients:detail:uuid:" // + client-id
)

// Client Cache TTLs
const (
	TTL_USER_CLIENTS  = TTL_SEMI_STATIC_MEDIUM // 2 hours
	TTL_CLIENT_DETAIL = TTL_SEMI_STATIC_MEDIUM // 2 hours
)

// ================== AUTH MODULE ==================

// Auth Cache Keys
const (
	CACHE_KEY_USER_PROFILE = CACHE_PREFIX + ":auth:user:profile:uuid:" // + user-id
)

// Auth Cache TTLs
const (
	TTL_USER_PROFILE = TTL_STATIC_SHORT // 6 hours
)

// ================== CACHE INVALIDATION PATTERNS ==================

// Patterns for cache invalidation (used with Redis SCAN or manual invalidation)
const (
	// Booking-related invalidation patterns
	PATTERN_INVALIDATE_BOOKINGS_ALL = CACHE_PREFIX + ":bookings:*"

	// Client-related invalidation patterns
	PATTERN_INVALIDATE_CLIENTS_ALL = CACHE_PREFIX + ":clients:*"

	// User-related invalidation patterns
	PATTERN_INVALIDATE_USER_ALL = CACHE_PREFIX + ":*:user:*" // + user-id + *
)

// ================== HELPER FUNCTIONS ==================

func BuildUserBookingsKey(userID string, page int) string {
	return CACHE_KEY_USER_BOOKINGS + userID + ":page:" + fmt.Sprintf("%d", page)
}

func BuildBookingDetailKey(bookingID string) string {
	return CACHE_KEY_BOOKING_DETAIL + bookingID
}

func BuildUserConflictsKey(userID string) string {
	return CACHE_KEY_USER_CONFLICTS + userID
}

func BuildClientDetailKey(clientID string) string {
	return CACHE_KEY_CLIENT_DETAIL + clientID
}

// PatternUserBookingData matches every cached booking-derived entry for one user,
// including the conflict scan. Used after any booking mutation.
func PatternUserBookingData(userID string) string {
	return CACHE_PREFIX + ":bookings:*" + userID + "*"
}
