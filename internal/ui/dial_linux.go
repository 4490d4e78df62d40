//go:build linux

package ui

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"time"
	"unsafe"
)

// Linux evdev constants
const (
	evRel   = 0x02
	relDial = 0x07
)

// inputEventSize is the size of a Linux input_event struct (timeval + u16 + u16 + s32).
var inputEventSize = int(unsafe.Sizeof(struct {
	Sec, Usec int64
	Type      uint16
	Code      uint16
	Value     int32
}{}))

// open scans /dev/input/event* and starts a reader per accessible device.
func (d *Dial) open() {
	matches, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(matches) == 0 {
		return
	}

	for _, path := range matches {
		f, err := os.Open(path)
		if err != nil {
			// No permission or device not accessible; skip silently
			continue
		}
		d.mu.Lock()
		d.closers = append(d.closers, f)
		d.mu.Unlock()
		go d.read(f, filepath.Base(path))
	}
}

func (d *Dial) read(f *os.File, device string) {
	buf := make([]byte, inputEventSize)
	for {
		if _, err := f.Read(buf); err != nil {
			return
		}

		// type, code and value follow the timeval
		off := inputEventSize - 8
		typ := binary.LittleEndian.Uint16(buf[off : off+2])
		code := binary.LittleEndian.Uint16(buf[off+2 : off+4])
		value := int32(binary.LittleEndian.Uint32(buf[off+4 : off+8]))

		if typ != evRel || code != relDial || value == 0 {
			continue
		}
		d.record(InputEvent{
			Time:   time.Now(),
			Device: device,
			Type:   typ,
			Code:   code,
			Value:  value,
		})
	}
}
