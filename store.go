package collider

import (
	"fmt"
	"os"
	"path/filepath"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// FilePrefix begins the name of every persisted collision record; the round's k completes it.
const FilePrefix = "Collision_Output_"

// DirStore writes one record per k value under Dir: two lines, each one colliding preimage
// rendered as binary digits. Runs targeting different k values never touch each other's files.
type DirStore struct {
	Dir string
}

func (s DirStore) Put(res Result) error {
	name := filepath.Join(s.Dir, fmt.Sprintf("%s%d.txt", FilePrefix, res.K))
	return os.WriteFile(name, []byte(res.X.Bits()+"\n"+res.Y.Bits()+"\n"), 0o644)
}
