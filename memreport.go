package unthbuf

import (
	"unsafe"

	"github.com/Longor1996/unthbuf/utils"
)

// MemReport returns a hierarchical memory usage report for this buffer.
func (buf *Buf) MemReport() utils.MemReport {
	structBytes := int(unsafe.Sizeof(*buf))
	cellBytes := buf.RawByteLen()
	return utils.MemReport{
		Name:       "unthbuf." + buf.layout.Name(),
		TotalBytes: structBytes + cellBytes,
		Children: []utils.MemReport{
			{Name: "struct", TotalBytes: structBytes},
			{Name: "cells", TotalBytes: cellBytes},
		},
	}
}
