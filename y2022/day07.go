package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	aoc "github.com/maisem/aoc2022"
)

type dirent struct {
	dir  bool
	size int
}

// parseFS replays a terminal session into a directory tree.
func parseFS(lines []string) (*aoc.Tree[dirent], error) {
	t := aoc.NewTree(dirent{dir: true})
	cur := aoc.Root
	for i, l := range lines {
		switch {
		case l == "":
		case l == "$ ls":
		case l == "$ cd /":
			cur = aoc.Root
		case l == "$ cd ..":
			if cur == aoc.Root {
				return nil, errors.Errorf("line %d: cd .. from /", i+1)
			}
			cur = t.Parent(cur)
		case strings.HasPrefix(l, "$ cd "):
			name := strings.TrimPrefix(l, "$ cd ")
			c, ok := t.Child(cur, name)
			if !ok {
				c = t.Add(cur, name, dirent{dir: true})
			}
			if !t.Value(c).dir {
				return nil, errors.Errorf("line %d: cd into file %q", i+1, t.Name(c))
			}
			cur = c
		case strings.HasPrefix(l, "$ "):
			return nil, errors.Errorf("line %d: unknown command %q", i+1, l)
		default:
			sz, name, ok := strings.Cut(l, " ")
			if !ok {
				return nil, errors.Errorf("line %d: bad listing %q", i+1, l)
			}
			if _, ok := t.Child(cur, name); ok {
				continue // listed before
			}
			if sz == "dir" {
				t.Add(cur, name, dirent{dir: true})
				continue
			}
			n, err := strconv.Atoi(sz)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", i+1)
			}
			t.Add(cur, name, dirent{size: n})
		}
	}
	return t, nil
}

// dirSizes returns the total size of every directory, root first. Directory
// entries end up holding their totals.
func dirSizes(t *aoc.Tree[dirent]) []int {
	var sizes []int
	t.PostOrder(aoc.Root, func(id int) {
		d := t.Value(id)
		if p := t.Parent(id); p >= 0 {
			t.Update(p, func(pd dirent) dirent {
				pd.size += d.size
				return pd
			})
		}
		if d.dir {
			sizes = append(sizes, d.size)
		}
	})
	// PostOrder visits the root last.
	last := len(sizes) - 1
	sizes[0], sizes[last] = sizes[last], sizes[0]
	return sizes
}

func (s solver) dirSizes() ([]int, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	t, err := parseFS(lines)
	if err != nil {
		return nil, err
	}
	return dirSizes(t), nil
}

/*
want=95437

$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
*/
func (s solver) D7p1() (any, error) {
	sizes, err := s.dirSizes()
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, v := range sizes {
		if v <= 100000 {
			sum += v
		}
	}
	return sum, nil
}

const (
	diskSize   = 70000000
	updateSize = 30000000
)

// want=24933642
func (s solver) D7p2() (any, error) {
	sizes, err := s.dirSizes()
	if err != nil {
		return nil, err
	}
	need := updateSize - (diskSize - sizes[0])
	best := sizes[0]
	for _, v := range sizes {
		if v >= need && v < best {
			best = v
		}
	}
	return best, nil
}
