// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Value represents the actual Go preference value.
type Value any

// pref is the interface implemented by all types in the prefs package.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are shared by all the types in the package
type hooks struct {
	pre  func(Value) error
	post func(Value) error
}

// SetHookPre sets the function to be called before the value changes. If the
// function returns an error the value is not changed.
func (h *hooks) SetHookPre(f func(Value) error) {
	h.pre = f
}

// SetHookPost sets the function to be called after the value changes.
func (h *hooks) SetHookPost(f func(Value) error) {
	h.post = f
}

func (h *hooks) commit(v Value, store func()) error {
	if h.pre != nil {
		if err := h.pre(v); err != nil {
			return err
		}
	}
	store()
	if h.post != nil {
		return h.post(v)
	}
	return nil
}

// Bool is a boolean preference.
type Bool struct {
	hooks
	crit  sync.RWMutex
	value bool
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set accepts a bool or a string. Any string other than "true" (case
// insensitive) is false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}
	return p.commit(nv, func() {
		p.crit.Lock()
		p.value = nv
		p.crit.Unlock()
	})
}

// Get returns the current value as a bool.
func (p *Bool) Get() Value {
	p.crit.RLock()
	defer p.crit.RUnlock()
	return p.value
}

// Reset to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// Int is an integer preference.
type Int struct {
	hooks
	crit  sync.RWMutex
	value int
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set accepts any integer type or a string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int32:
		nv = int(v)
	case int64:
		nv = int(v)
	case uint:
		nv = int(v)
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int", v)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}
	return p.commit(nv, func() {
		p.crit.Lock()
		p.value = nv
		p.crit.Unlock()
	})
}

// Get returns the current value as an int.
func (p *Int) Get() Value {
	p.crit.RLock()
	defer p.crit.RUnlock()
	return p.value
}

// Reset to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float is a float64 preference.
type Float struct {
	hooks
	crit  sync.RWMutex
	value float64
}

func (p *Float) String() string {
	return strconv.FormatFloat(p.Get().(float64), 'f', -1, 64)
}

// Set accepts a float32, float64 or a string.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case int:
		nv = float64(v)
	case string:
		var err error
		nv, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Float", v)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Float", v)
	}
	return p.commit(nv, func() {
		p.crit.Lock()
		p.value = nv
		p.crit.Unlock()
	})
}

// Get returns the current value as a float64.
func (p *Float) Get() Value {
	p.crit.RLock()
	defer p.crit.RUnlock()
	return p.value
}

// Reset to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// String is a string preference.
type String struct {
	hooks
	crit  sync.RWMutex
	value string
}

func (p *String) String() string {
	return p.Get().(string)
}

// Set accepts any value and formats it with the %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	return p.commit(nv, func() {
		p.crit.Lock()
		p.value = nv
		p.crit.Unlock()
	})
}

// Get returns the current value as a string.
func (p *String) Get() Value {
	p.crit.RLock()
	defer p.crit.RUnlock()
	return p.value
}

// Reset to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}
