// Package drm translates the internal format and allocation-type
// representation into the DRM fourcc + format-modifier vocabulary display
// and compositor collaborators consume.
package drm

import (
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/gralloc/format"
)

// FourCC is a DRM fourcc format code.
type FourCC uint32

// FormatInvalid is the sentinel for "no mapping exists". Callers must treat
// it as "tag unavailable", not as an error.
const FormatInvalid FourCC = 0

const (
	FormatR16                  FourCC = 'R' | '1'<<8 | '6'<<16 | ' '<<24
	FormatABGR8888             FourCC = 'A' | 'B'<<8 | '2'<<16 | '4'<<24
	FormatARGB8888             FourCC = 'A' | 'R'<<8 | '2'<<16 | '4'<<24
	FormatXBGR8888             FourCC = 'X' | 'B'<<8 | '2'<<16 | '4'<<24
	FormatRGB565               FourCC = 'R' | 'G'<<8 | '1'<<16 | '6'<<24
	FormatBGR565               FourCC = 'B' | 'G'<<8 | '1'<<16 | '6'<<24
	FormatBGR888               FourCC = 'B' | 'G'<<8 | '2'<<16 | '4'<<24
	FormatABGR2101010          FourCC = 'A' | 'B'<<8 | '3'<<16 | '0'<<24
	FormatABGR16161616F        FourCC = 'A' | 'B'<<8 | '4'<<16 | 'H'<<24
	FormatYVU420               FourCC = 'Y' | 'V'<<8 | '1'<<16 | '2'<<24
	FormatYUV420               FourCC = 'Y' | 'U'<<8 | '1'<<16 | '2'<<24
	FormatNV12                 FourCC = 'N' | 'V'<<8 | '1'<<16 | '2'<<24
	FormatNV15                 FourCC = 'N' | 'V'<<8 | '1'<<16 | '5'<<24
	FormatNV16                 FourCC = 'N' | 'V'<<8 | '1'<<16 | '6'<<24
	FormatNV21                 FourCC = 'N' | 'V'<<8 | '2'<<16 | '1'<<24
	FormatY0L2                 FourCC = 'Y' | '0'<<8 | 'L'<<16 | '2'<<24
	FormatY210                 FourCC = 'Y' | '2'<<8 | '1'<<16 | '0'<<24
	FormatP010                 FourCC = 'P' | '0'<<8 | '1'<<16 | '0'<<24
	FormatP210                 FourCC = 'P' | '2'<<8 | '1'<<16 | '0'<<24
	FormatY410                 FourCC = 'Y' | '4'<<8 | '1'<<16 | '0'<<24
	FormatYUV444               FourCC = 'Y' | 'U'<<8 | '2'<<16 | '4'<<24
	FormatQ410                 FourCC = 'Q' | '4'<<8 | '1'<<16 | '0'<<24
	FormatQ401                 FourCC = 'Q' | '4'<<8 | '0'<<16 | '1'<<24
	FormatYUYV                 FourCC = 'Y' | 'U'<<8 | 'Y'<<16 | 'V'<<24
	FormatYUV420_8Bit          FourCC = 'Y' | 'U'<<8 | '0'<<16 | '8'<<24
	FormatYUV420_10Bit         FourCC = 'Y' | 'U'<<8 | '1'<<16 | '0'<<24
	FormatAXBXGXRX106106106106 FourCC = 'A' | 'B'<<8 | '1'<<16 | '0'<<24
)

type colorModel int

const (
	colorModelRGB colorModel = iota
	colorModelYUV
)

type tableEntry struct {
	fourcc FourCC
	model  colorModel
}

var table *swiss.Map[format.ID, tableEntry]

func init() {
	entries := map[format.ID]tableEntry{
		format.RAW16:         {FormatR16, colorModelRGB},
		format.RGBA8888:      {FormatABGR8888, colorModelRGB},
		format.BGRA8888:      {FormatARGB8888, colorModelRGB},
		format.RGB565:        {FormatRGB565, colorModelRGB},
		format.RGBX8888:      {FormatXBGR8888, colorModelRGB},
		format.RGB888:        {FormatBGR888, colorModelRGB},
		format.RGBA1010102:   {FormatABGR2101010, colorModelRGB},
		format.RGBA16161616:  {FormatABGR16161616F, colorModelRGB},
		format.RGBA10101010:  {FormatAXBXGXRX106106106106, colorModelRGB},
		format.YV12:          {FormatYVU420, colorModelYUV},
		format.YU12:          {FormatYUV420, colorModelYUV},
		format.NV12:          {FormatNV12, colorModelYUV},
		format.NV15:          {FormatNV15, colorModelYUV},
		format.NV16:          {FormatNV16, colorModelYUV},
		format.NV21:          {FormatNV21, colorModelYUV},
		format.Y0L2:          {FormatY0L2, colorModelYUV},
		format.Y210:          {FormatY210, colorModelYUV},
		format.P010:          {FormatP010, colorModelYUV},
		format.P210:          {FormatP210, colorModelYUV},
		format.Y410:          {FormatY410, colorModelYUV},
		format.YUV444:        {FormatYUV444, colorModelYUV},
		format.Q410:          {FormatQ410, colorModelYUV},
		format.Q401:          {FormatQ401, colorModelYUV},
		format.YUV422_8Bit:   {FormatYUYV, colorModelYUV},
		format.YUV420_8BitI:  {FormatYUV420_8Bit, colorModelYUV},
		format.YUV420_10BitI: {FormatYUV420_10Bit, colorModelYUV},
	}

	table = swiss.NewMap[format.ID, tableEntry](uint32(len(entries)))
	for id, entry := range entries {
		table.Put(id, entry)
	}
}
