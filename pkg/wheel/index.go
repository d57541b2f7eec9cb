package wheel

// NoIndex is returned when no entry can be selected: the wheel is empty or
// has no usable item height.
const NoIndex = -1

// IndexForOffset returns the entry selected at a scroll offset. The offset is
// rounded to the nearest row, half a row away from zero, and wrapped into
// [0, itemCount). Integer division truncates toward zero on both sides.
func IndexForOffset(offset, itemHeight, itemCount int) int {
	if itemCount <= 0 || itemHeight <= 0 {
		return NoIndex
	}
	var raw int
	if offset < 0 {
		raw = (offset - itemHeight/2) / itemHeight
	} else {
		raw = (offset + itemHeight/2) / itemHeight
	}
	return wrap(raw, itemCount)
}

// OffsetForIndex returns the scroll offset that centers index.
func OffsetForIndex(index, itemHeight int) int {
	return index * itemHeight
}

// ItemIndex returns the row index the offset falls in, truncated toward zero.
func ItemIndex(offset, itemHeight int) int {
	if itemHeight <= 0 {
		return 0
	}
	return offset / itemHeight
}

// ItemOffset returns how far the offset is past ItemIndex rows. It carries the
// sign of offset.
func ItemOffset(offset, itemHeight int) int {
	if itemHeight <= 0 {
		return 0
	}
	return offset % itemHeight
}

// EntryAt looks up entries[index]. Cyclic wheels wrap any index; bounded
// wheels report false outside [0, len(entries)).
func EntryAt(entries []string, index int, cyclic bool) (string, bool) {
	n := len(entries)
	if n == 0 {
		return "", false
	}
	if cyclic {
		return entries[wrap(index, n)], true
	}
	if index < 0 || index >= n {
		return "", false
	}
	return entries[index], true
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
