package blueprint

// validate checks id and the shape and range of every cost vector.
// It returns the first violation found, scanning robots from Ore to Geode.
//
// Complexity: O(1).
func validate(id int, costs [NumResources][]int) error {
	if id < 1 {
		return ErrBadID
	}

	var (
		robot Resource
		c     int
	)
	for robot = Ore; robot <= Geode; robot++ {
		// Exactly one entry per input resource.
		if len(costs[robot]) != len(inputs[robot]) {
			return ErrCostShape
		}
		for _, c = range costs[robot] {
			if c < 0 || c > MaxCost {
				return ErrCostRange
			}
		}
	}

	return nil
}
