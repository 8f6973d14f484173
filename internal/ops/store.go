// Copyright (C) 2021 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package ops

import (
	"fmt"
	"io"
	"github.com/mlnoga/pfmnorm/internal/pfm"
)

// A sample grid store backed by PFM files on disk
type FileStore struct {
	Log io.Writer
}

func NewFileStore(log io.Writer) *FileStore {
	return &FileStore{Log: log}
}

func (s *FileStore) Load(name string) (*pfm.Image, error) {
	f, err:=pfm.NewImageFromFile(name)
	if err!=nil { return nil, err }
	fmt.Fprintf(s.Log, "Loaded %s pixels from %s\n", f.DimensionsToString(), name)
	return f, nil
}

func (s *FileStore) Save(name string, f *pfm.Image) error {
	return f.WriteFile(name)
}
