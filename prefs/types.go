// This file is part of vcsplay.
//
// vcsplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vcsplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vcsplay.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value atomic.Bool
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.value.Load())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		p.value.Store(v)
	case string:
		p.value.Store(strings.ToLower(strings.TrimSpace(v)) == "true")
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.value.Load()
}

// String implements a string type in the prefs system.
type String struct {
	value atomic.Value // string
}

func (p *String) String() string {
	ov := p.value.Load()
	if ov == nil {
		return ""
	}
	return ov.(string)
}

// Set new value to String type. Values of any type will be converted with
// the %v verb.
func (p *String) Set(v Value) error {
	p.value.Store(strings.TrimSpace(fmt.Sprintf("%v", v)))
	return nil
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// Int implements an integer type in the prefs system. An optional range can
// be specified with SetRange().
type Int struct {
	value    atomic.Int64
	min, max int64
	ranged   bool
}

func (p *Int) String() string {
	return strconv.FormatInt(p.value.Load(), 10)
}

// SetRange limits the values that can be set. Values outside the range are
// refused by Set(). The existing value is not checked.
func (p *Int) SetRange(min, max int) {
	p.min = int64(min)
	p.max = int64(max)
	p.ranged = true
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int64
	switch v := v.(type) {
	case int:
		nv = int64(v)
	case int64:
		nv = v
	case uint32:
		nv = int64(v)
	case string:
		var err error
		nv, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %T to prefs.Int: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}

	if p.ranged && (nv < p.min || nv > p.max) {
		return fmt.Errorf("prefs: %d is outside the range %d to %d", nv, p.min, p.max)
	}

	p.value.Store(nv)
	return nil
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return int(p.value.Load())
}
