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


package norm

import (
	"testing"
)


func TestVerifyDefaults(t *testing.T) {
	p:=NewParams()
	if err:=p.Verify(); err!=nil {
		t.Errorf("defaults rejected: %s", err.Error())
	}
	if p.HasMin() || p.HasMax() {
		t.Errorf("defaults must not carry range overrides")
	}
}


func TestVerifyEpsilonBounds(t *testing.T) {
	p:=NewParams()
	p.Epsilon=1.5
	if err:=p.Verify(); err==nil {
		t.Errorf("expected error for epsilon 1.5")
	}
	p.Epsilon=-0.1
	if err:=p.Verify(); err==nil {
		t.Errorf("expected error for epsilon -0.1")
	}
	p.Epsilon=0
	if err:=p.Verify(); err!=nil {
		t.Errorf("epsilon 0 rejected: %s", err.Error())
	}
	p.Epsilon=1
	if err:=p.Verify(); err!=nil {
		t.Errorf("epsilon 1 rejected: %s", err.Error())
	}
}


func TestVerifyInvertedOverrides(t *testing.T) {
	p:=NewParams()
	p.Min, p.Max = 5, 2
	if err:=p.Verify(); err==nil {
		t.Errorf("expected error for minimum 5 > maximum 2")
	}

	// a single override cannot be inverted
	p=NewParams()
	p.Min=5
	if err:=p.Verify(); err!=nil {
		t.Errorf("single minimum override rejected: %s", err.Error())
	}
}
