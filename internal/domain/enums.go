package domain

// MembershipStatus represents the governance state of a (collection, user) pair.
type MembershipStatus string

const (
	MembershipPending MembershipStatus = "pending"
	MembershipInvited MembershipStatus = "invited"
	MembershipActive  MembershipStatus = "active"
	MembershipRemoved MembershipStatus = "removed"
)

func (s MembershipStatus) String() string { return string(s) }

func (s MembershipStatus) IsValid() bool {
	switch s {
	case MembershipPending, MembershipInvited, MembershipActive, MembershipRemoved:
		return true
	}
	return false
}

// MembershipSource records how a membership came into being.
type MembershipSource string

const (
	SourceSystem            MembershipSource = "system"
	SourceCreatorInvitation MembershipSource = "creator_invitation"
	SourceOwnerInvitation   MembershipSource = "owner_invitation"
	SourceSelfNomination    MembershipSource = "self_nomination"
)

func (s MembershipSource) String() string { return string(s) }

func (s MembershipSource) IsValid() bool {
	switch s {
	case SourceSystem, SourceCreatorInvitation, SourceOwnerInvitation, SourceSelfNomination:
		return true
	}
	return false
}

// RoleEventType identifies the governance transition recorded in the role event log.
type RoleEventType string

const (
	EventMaintainerInvited    RoleEventType = "maintainer_invited"
	EventMaintainerApplied    RoleEventType = "maintainer_applied"
	EventMaintainerApproved   RoleEventType = "maintainer_approved"
	EventMaintainerRemoved    RoleEventType = "maintainer_removed"
	EventOwnershipTransferred RoleEventType = "ownership_transferred"
)

func (t RoleEventType) String() string { return string(t) }

func (t RoleEventType) IsValid() bool {
	switch t {
	case EventMaintainerInvited, EventMaintainerApplied, EventMaintainerApproved,
		EventMaintainerRemoved, EventOwnershipTransferred:
		return true
	}
	return false
}

// PlazaFilter selects the ordering of the public collection listing.
type PlazaFilter string

const (
	PlazaLatest       PlazaFilter = "latest"
	PlazaMostFollowed PlazaFilter = "most_followed"
	PlazaRecommended  PlazaFilter = "recommended"
)

func (f PlazaFilter) String() string { return string(f) }

func (f PlazaFilter) IsValid() bool {
	switch f {
	case PlazaLatest, PlazaMostFollowed, PlazaRecommended:
		return true
	}
	return false
}
