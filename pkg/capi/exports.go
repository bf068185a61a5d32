// Package main provides C-compatible functions for building a shared library.
// Build with: go build -buildmode=c-shared -o libbglogic.so ./pkg/capi
//
// Boards cross the boundary as gnubg position IDs read with Black on roll.
// Sides are 0 for Black and 1 for White.
package main

/*
#include <stdlib.h>
#include <stdint.h>
*/
import "C"
import (
	"unsafe"

	"github.com/yourusername/bglogic/pkg/engine"
)

// writeJSON hands a result string to the caller, who frees it with
// bglogic_free_string.
func writeJSON(s string, ok bool, resultJSON **C.char) C.int {
	*resultJSON = C.CString(s)
	if !ok {
		return -1
	}
	return 0
}

//export bglogic_version
func bglogic_version() *C.char {
	return C.CString(version)
}

//export bglogic_last_error
func bglogic_last_error() *C.char {
	msg := lastErrorText()
	if msg == "" {
		return nil
	}
	return C.CString(msg)
}

//export bglogic_start_position
func bglogic_start_position() *C.char {
	b := engine.StartingBoard()
	return C.CString(b.PositionID(engine.Black))
}

// bglogic_view writes side's view as 26 signed counts: index 0 is side's
// bar, 1-24 are points in side's numbering, 25 is side's tray. Positive
// counts are side's chequers.
//
//export bglogic_view
func bglogic_view(positionID *C.char, side C.int, resultJSON **C.char) C.int {
	s, ok := view(C.GoString(positionID), int(side))
	return writeJSON(s, ok, resultJSON)
}

//export bglogic_parse_move
func bglogic_parse_move(text *C.char, resultJSON **C.char) C.int {
	s, ok := parseMove(C.GoString(text))
	return writeJSON(s, ok, resultJSON)
}

// bglogic_validate checks one submove without changing anything.
//
//export bglogic_validate
func bglogic_validate(positionID, submove *C.char, side C.int, resultJSON **C.char) C.int {
	s, ok := validate(C.GoString(positionID), C.GoString(submove), int(side))
	return writeJSON(s, ok, resultJSON)
}

// bglogic_apply applies a whole move and returns the new position ID.
// Nothing is returned if any submove fails.
//
//export bglogic_apply
func bglogic_apply(positionID, move *C.char, side C.int, resultJSON **C.char) C.int {
	s, ok := apply(C.GoString(positionID), C.GoString(move), int(side))
	return writeJSON(s, ok, resultJSON)
}

// bglogic_pip_count returns side's pip count, or -1 on error.
//
//export bglogic_pip_count
func bglogic_pip_count(positionID *C.char, side C.int) C.int {
	return C.int(pipCount(C.GoString(positionID), int(side)))
}

// bglogic_switch returns the other side, or -1 for an invalid side.
//
//export bglogic_switch
func bglogic_switch(side C.int) C.int {
	return C.int(switchSide(int(side)))
}

//export bglogic_free_string
func bglogic_free_string(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

func main() {}
