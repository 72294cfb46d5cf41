package blueprint

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// blueprintPattern matches one blueprint in the puzzle wording. Whitespace
// between sentences may include newlines, so a blueprint may span lines.
var blueprintPattern = regexp.MustCompile(
	`Blueprint\s+(\d+):\s*` +
		`Each ore robot costs (\d+) ore\.\s*` +
		`Each clay robot costs (\d+) ore\.\s*` +
		`Each obsidian robot costs (\d+) ore and (\d+) clay\.\s*` +
		`Each geode robot costs (\d+) ore and (\d+) obsidian\.`)

// Parse reads exactly one blueprint from text.
//
// Errors: ErrSyntax (wrapped) when text is not a single blueprint, or any
// error of New.
func Parse(text string) (*Blueprint, error) {
	text = strings.TrimSpace(text)
	loc := blueprintPattern.FindStringSubmatchIndex(text)
	if loc == nil || loc[0] != 0 || loc[1] != len(text) {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, text)
	}

	return fromMatch(blueprintPattern.FindStringSubmatch(text))
}

// ParseAll reads every blueprint from r, in input order. Blueprints may be
// written one per line or wrapped over several lines.
//
// Errors: ErrSyntax (wrapped, with the blueprint ordinal) when the number of
// "Blueprint" headers differs from the number of well-formed blueprints or
// when r holds none; any error of New; any read error from r.
func ParseAll(r io.Reader) ([]*Blueprint, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := string(data)

	matches := blueprintPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no blueprints found", ErrSyntax)
	}
	if headers := strings.Count(text, "Blueprint"); headers != len(matches) {
		return nil, fmt.Errorf("%w: %d headers but %d well-formed blueprints", ErrSyntax, headers, len(matches))
	}

	out := make([]*Blueprint, 0, len(matches))
	var (
		i  int
		bp *Blueprint
	)
	for i = range matches {
		bp, err = fromMatch(matches[i])
		if err != nil {
			return nil, fmt.Errorf("blueprint #%d: %w", i+1, err)
		}
		out = append(out, bp)
	}

	return out, nil
}

// fromMatch converts the 8 submatches of blueprintPattern into a Blueprint.
func fromMatch(m []string) (*Blueprint, error) {
	var (
		nums [7]int
		i    int
		err  error
	)
	for i = range nums {
		nums[i], err = strconv.Atoi(m[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
	}

	return New(nums[0], [NumResources][]int{
		Ore:      {nums[1]},
		Clay:     {nums[2]},
		Obsidian: {nums[3], nums[4]},
		Geode:    {nums[5], nums[6]},
	})
}
