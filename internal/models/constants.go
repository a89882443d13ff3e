package models

// ============================================================================
// PROJECT STATUS CONSTANTS
// ============================================================================

// Project status values as they appear in the catalog.
// Comparisons against these are always case-insensitive.
const (
	StatusCompleted  = "Completed"
	StatusInProgress = "In Progress"
	StatusPlanned    = "Planned"
)

// ============================================================================
// CATEGORY CONSTANTS
// ============================================================================

// CategoryAll is the sentinel category that disables category filtering
const CategoryAll = "all"

// Well-known project categories
const (
	CategoryWebApplication    = "Web Application"
	CategoryMobileApplication = "Mobile Application"
	CategoryDataVisualization = "Data Visualization"
)
