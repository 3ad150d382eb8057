package api

import (
	"github.com/ashchan-dev/ashchan/internal/domain"
)

// Response DTOs

// StatsResponse wraps sitewide counters
type StatsResponse struct {
	domain.Stats
	// Add extra API-specific fields here if needed in the future
}
