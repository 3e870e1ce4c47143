package domain

// ServiceItem is immutable catalog reference data: a bookable salon service.
type ServiceItem struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
	Active          bool
}

// EffectiveDuration returns the service duration, defaulting to
// DefaultServiceDurationMinutes when the catalog entry has none.
func (s *ServiceItem) EffectiveDuration() int {
	if s.DurationMinutes <= 0 {
		return DefaultServiceDurationMinutes
	}
	return s.DurationMinutes
}

// Stylist is a salon staff member able to take appointments.
type Stylist struct {
	ID        int64
	Name      string
	Specialty string
	Active    bool
}

// StylistScopeKind discriminates the stylist selection variants.
type StylistScopeKind int

const (
	// ScopeAnyStylist is the pooled scope: a tick is occupied only when
	// every active stylist is busy at that tick.
	ScopeAnyStylist StylistScopeKind = iota
	// ScopeSpecificStylist scopes occupancy to one stylist's calendar.
	ScopeSpecificStylist
)

// StylistScope is the explicit tagged union replacing the "ANY"-sentinel
// mixed with stylist identifiers.
type StylistScope struct {
	Kind      StylistScopeKind
	StylistID int64 // meaningful only for ScopeSpecificStylist
}

// AnyStylist returns the pooled scope.
func AnyStylist() StylistScope {
	return StylistScope{Kind: ScopeAnyStylist}
}

// SpecificStylist returns the scope of a single stylist.
func SpecificStylist(id int64) StylistScope {
	return StylistScope{Kind: ScopeSpecificStylist, StylistID: id}
}

// IsAny reports whether the scope is the pooled "any stylist" scope.
func (s StylistScope) IsAny() bool {
	return s.Kind == ScopeAnyStylist
}
