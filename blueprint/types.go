package blueprint

import (
	"errors"
	"math"
)

// Resource identifies one tier of the production chain.
type Resource uint8

const (
	// Ore is the primary resource; the factory starts with one ore robot.
	Ore Resource = iota

	// Clay is the secondary resource, paid for in ore.
	Clay

	// Obsidian is the tertiary resource, paid for in ore and clay.
	Obsidian

	// Geode is the terminal resource whose final stock is maximized.
	Geode

	// NumResources is the number of resource kinds.
	NumResources = 4
)

const (
	// MaxCost bounds every single cost entry. Together with the search
	// horizon limit it keeps all stocks and rates inside int16.
	MaxCost = 64

	// Unbounded is the cap reported for the terminal resource.
	Unbounded = math.MaxInt16
)

var (
	// ErrBadID is returned when a blueprint id is not positive.
	ErrBadID = errors.New("blueprint: id must be positive")

	// ErrCostShape is returned when a cost vector does not have exactly one
	// entry per input resource of its robot kind.
	ErrCostShape = errors.New("blueprint: cost vector has wrong shape")

	// ErrCostRange is returned when a cost entry is negative or above MaxCost.
	ErrCostRange = errors.New("blueprint: cost out of range")

	// ErrSyntax is returned when text or JSON input is not a blueprint list.
	ErrSyntax = errors.New("blueprint: malformed input")
)

// resourceNames is indexed by Resource.
var resourceNames = [NumResources]string{"ore", "clay", "obsidian", "geode"}

// inputs lists, per robot kind, the resources it is paid with, in the order
// cost vectors are given to New.
var inputs = [NumResources][]Resource{
	Ore:      {Ore},
	Clay:     {Ore},
	Obsidian: {Ore, Clay},
	Geode:    {Ore, Obsidian},
}

// Resources returns all kinds from the primary to the terminal tier.
func Resources() [NumResources]Resource {
	return [NumResources]Resource{Ore, Clay, Obsidian, Geode}
}

// String returns the lower-case resource name, e.g. "obsidian".
func (r Resource) String() string {
	if int(r) < NumResources {
		return resourceNames[r]
	}

	return "unknown"
}

// Valid reports whether r is one of the four resource kinds.
func (r Resource) Valid() bool { return int(r) < NumResources }

// Inputs returns the resources a robot of kind r is paid with.
// The returned slice must not be modified.
func Inputs(r Resource) []Resource {
	if !r.Valid() {
		return nil
	}

	return inputs[r]
}
