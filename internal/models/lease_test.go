package models

import "testing"

func TestLeaseStatusTransitions(t *testing.T) {
	cases := []struct {
		from    LeaseStatus
		to      LeaseStatus
		allowed bool
	}{
		{LeaseStatusDraft, LeaseStatusActive, true},
		{LeaseStatusDraft, LeaseStatusEnded, false},
		{LeaseStatusDraft, LeaseStatusTerminated, false},
		{LeaseStatusActive, LeaseStatusEnded, true},
		{LeaseStatusActive, LeaseStatusTerminated, true},
		{LeaseStatusActive, LeaseStatusDraft, false},
		{LeaseStatusEnded, LeaseStatusActive, false},
		{LeaseStatusTerminated, LeaseStatusActive, false},
	}

	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.allowed {
			t.Errorf("%s -> %s: expected %v, got %v", c.from, c.to, c.allowed, got)
		}
	}
}

func TestMaintenanceStatusTransitions(t *testing.T) {
	cases := []struct {
		from    MaintenanceStatus
		to      MaintenanceStatus
		allowed bool
	}{
		{MaintenanceStatusOpen, MaintenanceStatusInProgress, true},
		{MaintenanceStatusOpen, MaintenanceStatusCancelled, true},
		{MaintenanceStatusOpen, MaintenanceStatusResolved, false},
		{MaintenanceStatusInProgress, MaintenanceStatusResolved, true},
		{MaintenanceStatusInProgress, MaintenanceStatusOpen, false},
		{MaintenanceStatusResolved, MaintenanceStatusOpen, false},
		{MaintenanceStatusCancelled, MaintenanceStatusInProgress, false},
	}

	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.allowed {
			t.Errorf("%s -> %s: expected %v, got %v", c.from, c.to, c.allowed, got)
		}
	}
}
