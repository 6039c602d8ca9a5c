// Package level parses the digit-grid level format and spawns its blocks.
//
// Each line of a level file is one row along +Z; each character is one
// column along +X holding a stack height digit. A digit d > 0 stacks d+1 unit
// blocks at Y = 0..d; a '0' leaves the cell empty.
package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrInvalidCell = errors.New("level: cell is not a decimal digit")
	ErrEmptyLevel  = errors.New("level: no rows")
)

// Block is one unit cube cell. X is the column, Z the row, Y the stack index.
type Block struct {
	X, Y, Z int
}

// Grid holds stack heights indexed [row][column]. Rows may differ in length.
type Grid struct {
	Heights [][]int
}

// Parse reads a level from r. Any non-digit character fails the whole parse.
func Parse(r io.Reader) (*Grid, error) {
	grid := &Grid{}
	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		heights := make([]int, 0, len(line))
		for col, c := range line {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("row %d column %d (%q): %w", row, col, c, ErrInvalidCell)
			}
			heights = append(heights, int(c-'0'))
		}
		grid.Heights = append(grid.Heights, heights)
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("level: read: %w", err)
	}
	if len(grid.Heights) == 0 {
		return nil, ErrEmptyLevel
	}
	return grid, nil
}

// Load reads and parses the level file at path.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("level: open %s: %w", path, err)
	}
	defer f.Close()

	grid, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("level: parse %s: %w", path, err)
	}
	return grid, nil
}

// Height returns the digit at (x, z), or 0 outside the grid.
func (g *Grid) Height(x, z int) int {
	if z < 0 || z >= len(g.Heights) || x < 0 || x >= len(g.Heights[z]) {
		return 0
	}
	return g.Heights[z][x]
}

// StackSize is the number of blocks a cell of height d produces.
func StackSize(d int) int {
	if d <= 0 {
		return 0
	}
	return d + 1
}

// Blocks enumerates every block, row by row, column by column, bottom up.
func (g *Grid) Blocks() []Block {
	var blocks []Block
	for z, row := range g.Heights {
		for x, d := range row {
			for y := 0; y < StackSize(d); y++ {
				blocks = append(blocks, Block{X: x, Y: y, Z: z})
			}
		}
	}
	return blocks
}
