package domain

import "time"

// AssetState classifies a resolved asset relative to a viewer. Every
// asset/viewer pair is in exactly one state, and each state exposes at most
// one primary action. The state is computed first and the permitted action
// looked up from it, never inferred from which handlers happen to exist.
type AssetState string

const (
	// StateListable: viewer owns the asset and it is not listed
	StateListable AssetState = "listable"
	// StateListedIdle: viewer listed the asset and it is not currently rented
	StateListedIdle AssetState = "listed_idle"
	// StateListedRented: viewer listed the asset and the rental period is active
	StateListedRented AssetState = "listed_rented"
	// StateMarketplaceAvailable: a third party's listing open for rent
	StateMarketplaceAvailable AssetState = "marketplace_available"
	// StateRentedActive: viewer rents the asset and the period has not elapsed
	StateRentedActive AssetState = "rented_active"
	// StateRentedExpired: viewer rents the asset and the period has elapsed
	StateRentedExpired AssetState = "rented_expired"
	// StateUnavailable: a third party's listing currently rented by someone else
	StateUnavailable AssetState = "unavailable"
)

// Action is the single primary action a state exposes
type Action string

const (
	ActionNone   Action = ""
	ActionList   Action = "list"
	ActionRent   Action = "rent"
	ActionClaim  Action = "claim"
	ActionReturn Action = "return"
)

// stateActions maps each state to its one permitted action
var stateActions = map[AssetState]Action{
	StateListable:             ActionList,
	StateListedIdle:           ActionClaim,
	StateListedRented:         ActionNone,
	StateMarketplaceAvailable: ActionRent,
	StateRentedActive:         ActionNone,
	StateRentedExpired:        ActionReturn,
	StateUnavailable:          ActionNone,
}

// StateOf computes the affordance state of an asset for a viewer at an instant.
// Rented-view membership is by renter of record; expiry only moves the state
// between RentedActive and RentedExpired.
func StateOf(a *ResolvedAsset, viewer string, now time.Time) AssetState {
	isOwner := viewer != "" && SameAddress(a.Owner, viewer)
	isRenter := viewer != "" && a.HasRenter() && SameAddress(a.Renter, viewer)
	activeRental := a.HasRenter() && a.RentedUntil > now.UnixMilli()

	if !a.Listed() {
		if isOwner {
			return StateListable
		}
		return StateUnavailable
	}

	switch {
	case isRenter:
		if activeRental {
			return StateRentedActive
		}
		return StateRentedExpired
	case isOwner:
		if activeRental {
			return StateListedRented
		}
		return StateListedIdle
	case !a.HasRenter():
		return StateMarketplaceAvailable
	default:
		return StateUnavailable
	}
}

// ActionOf returns the single permitted action for a viewer. Without a
// connected identity no action is ever offered, regardless of state.
func ActionOf(state AssetState, viewer string) Action {
	if viewer == "" {
		return ActionNone
	}
	return stateActions[state]
}
