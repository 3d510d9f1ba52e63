package models

// Identity satisfies the client accessor's Identifiable constraint.

func (p Property) Identity() string           { return p.ID.String() }
func (t Tenant) Identity() string             { return t.ID.String() }
func (l Lease) Identity() string              { return l.ID.String() }
func (m MaintenanceRequest) Identity() string { return m.ID.String() }
func (w WaitlistEntry) Identity() string      { return w.ID.String() }
