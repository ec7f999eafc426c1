package lister

import "io/fs"

// EntryType classifies a filesystem entry.
//
// The numeric values form a stable wire contract shared with every adapter
// (CLI, MCP) and must never be renumbered.
type EntryType uint8

const (
	// TypeNone means no type information is available.
	TypeNone EntryType = 0
	// TypeNotFound means the entry vanished before it could be classified.
	TypeNotFound EntryType = 1
	// TypeRegular is a regular file.
	TypeRegular EntryType = 2
	// TypeDirectory is a directory.
	TypeDirectory EntryType = 3
	// TypeSymlink is a symbolic link (only reported when classification
	// does not follow links).
	TypeSymlink EntryType = 4
	// TypeBlockDevice is a block device.
	TypeBlockDevice EntryType = 5
	// TypeCharDevice is a character device.
	TypeCharDevice EntryType = 6
	// TypeFIFO is a named pipe.
	TypeFIFO EntryType = 7
	// TypeSocket is a unix domain socket.
	TypeSocket EntryType = 8
	// TypeUnknown is the fallback for anything unclassifiable.
	TypeUnknown EntryType = 9
)

// String returns a human-readable name for the type.
func (t EntryType) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeNotFound:
		return "not found"
	case TypeRegular:
		return "file"
	case TypeDirectory:
		return "directory"
	case TypeSymlink:
		return "symlink"
	case TypeBlockDevice:
		return "block device"
	case TypeCharDevice:
		return "char device"
	case TypeFIFO:
		return "fifo"
	case TypeSocket:
		return "socket"
	default:
		return "unknown"
	}
}

// TypeFromMode derives the EntryType from a file mode.
func TypeFromMode(mode fs.FileMode) EntryType {
	switch {
	case mode.IsRegular():
		return TypeRegular
	case mode.IsDir():
		return TypeDirectory
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	case mode&fs.ModeCharDevice != 0:
		// ModeCharDevice implies ModeDevice, so check it first.
		return TypeCharDevice
	case mode&fs.ModeDevice != 0:
		return TypeBlockDevice
	case mode&fs.ModeNamedPipe != 0:
		return TypeFIFO
	case mode&fs.ModeSocket != 0:
		return TypeSocket
	default:
		return TypeUnknown
	}
}
