package blueprint

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"
)

// ParseJSON reads blueprints from a JSON document. The document is either an
// array of blueprint objects or an object holding that array under
// "blueprints". Each blueprint object names its cost vectors by resource:
//
//	{"id": 1, "ore": [4], "clay": [2], "obsidian": [3, 14], "geode": [2, 7]}
//
// Errors: ErrSyntax (wrapped) for invalid JSON, non-integer values or a
// missing array; any error of New, wrapped with the element index.
func ParseJSON(data string) ([]*Blueprint, error) {
	if !gjson.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrSyntax)
	}

	list := gjson.Parse(data)
	if list.IsObject() {
		list = list.Get("blueprints")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: expected an array of blueprints", ErrSyntax)
	}

	var (
		out  []*Blueprint
		idx  int
		perr error
	)
	list.ForEach(func(_, v gjson.Result) bool {
		var bp *Blueprint
		bp, perr = fromJSON(v)
		if perr != nil {
			perr = fmt.Errorf("blueprint json element %d: %w", idx, perr)
			return false
		}
		out = append(out, bp)
		idx++

		return true
	})
	if perr != nil {
		return nil, perr
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no blueprints found", ErrSyntax)
	}

	return out, nil
}

// fromJSON converts one blueprint object.
func fromJSON(v gjson.Result) (*Blueprint, error) {
	if !v.IsObject() {
		return nil, fmt.Errorf("%w: element is not an object", ErrSyntax)
	}

	id, err := JSONInt(v.Get("id"))
	if err != nil {
		return nil, err
	}

	var costs [NumResources][]int
	var robot Resource
	for robot = Ore; robot <= Geode; robot++ {
		field := v.Get(robot.String())
		if !field.Exists() {
			return nil, fmt.Errorf("%w: missing %s cost", ErrCostShape, robot)
		}
		if !field.IsArray() {
			return nil, fmt.Errorf("%w: %s cost is not an array", ErrSyntax, robot)
		}
		for _, x := range field.Array() {
			n, err := JSONInt(x)
			if err != nil {
				return nil, err
			}
			costs[robot] = append(costs[robot], n)
		}
	}

	return New(id, costs)
}

// JSONInt returns x as an int. Only integral JSON numbers within ±2⁵³ are
// accepted; anything else is ErrSyntax.
func JSONInt(x gjson.Result) (int, error) {
	if x.Type != gjson.Number || math.Abs(x.Num) > 1<<53 || x.Num != math.Trunc(x.Num) {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrSyntax, x.Raw)
	}

	return int(x.Int()), nil
}
