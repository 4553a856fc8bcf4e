// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

// Package test bundles a bunch of useful functions useful for testing
// purposes, particular useful in conjunction with the standard go test harness.
//
// The Expect*() functions report a test error and allow the test to
// continue. The Demand*() functions are fatal to the test and should be used
// when the result of the test is needed by further tests in the same
// function. For example, testing the length of a slice before iterating over
// it.
//
// It is worth describing how the ExpectSuccess() and ExpectFailure()
// functions handle the nil type because it is not obvious. The nil type is
// considered a success and consequently will cause ExpectFailure() to fail
// and ExpectSuccess() to succeed. This may not be how we want to interpret
// nil in all situations but because of how errors usually works (nil to
// indicate no error) we *need* to interpret nil in this way.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output.
package test
