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

// Package curated creates errors whose identity is the formatting pattern
// used to create them.
//
// A curated error is made with Errorf(), which takes a pattern and values in
// the same way as fmt.Errorf(). Formatting is deferred until Error() is
// called. The pattern can then be tested with Is() and Has():
//
//	const NotLoaded = "cartridge: not loaded"
//	err := curated.Errorf(NotLoaded)
//
//	curated.Is(err, NotLoaded)  // true
//
//	wrapped := curated.Errorf("hardware: %v", err)
//	curated.Is(wrapped, NotLoaded)  // false
//	curated.Has(wrapped, NotLoaded) // true
//
// Patterns are usually declared as exported constants next to the code that
// raises them.
//
// Error() normalises the message chain by removing adjacent duplicate
// prefixes. If each layer of a program prefixes its name then the same name
// would often appear twice:
//
//	savestate: savestate: file not found
//
// which is normalised to:
//
//	savestate: file not found
//
// Values that are non-curated errors are reachable with errors.Is() and
// errors.As() through the Unwrap() function.
package curated
