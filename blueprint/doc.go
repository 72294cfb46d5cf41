// Package blueprint describes the cost model of a robot factory: four
// resource kinds, the price of one more robot of each kind, and the
// production caps derived from those prices.
//
// 🚀 What is a blueprint?
//
//	A blueprint is an immutable price list. Robots of each kind collect one
//	unit of their resource per minute; buying a robot costs lower-tier
//	resources:
//	  • Ore robot      — paid in ore
//	  • Clay robot     — paid in ore
//	  • Obsidian robot — paid in ore and clay
//	  • Geode robot    — paid in ore and obsidian
//
// ✨ Derived caps:
//
//	Only one robot can be bought per minute, so it is never useful to collect
//	a non-terminal resource faster than the most expensive single purchase
//	can spend it. Cap(Ore), Cap(Clay) and Cap(Obsidian) expose those limits;
//	Cap(Geode) is unbounded.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/foundry/blueprint"
//
//	bp, err := blueprint.New(1, [blueprint.NumResources][]int{
//	  blueprint.Ore:      {4},
//	  blueprint.Clay:     {2},
//	  blueprint.Obsidian: {3, 14},
//	  blueprint.Geode:    {2, 7},
//	})
//
//	// or from puzzle text / JSON
//	bps, err := blueprint.ParseAll(r)
//	bps, err := blueprint.ParseJSON(`[{"id":1,"ore":[4],"clay":[2],"obsidian":[3,14],"geode":[2,7]}]`)
//
// Errors:
//   - ErrBadID      — id < 1.
//   - ErrCostShape  — a cost vector does not list exactly one entry per input resource.
//   - ErrCostRange  — a cost entry is outside [0, MaxCost].
//   - ErrSyntax     — text or JSON input could not be read as blueprints.
package blueprint
