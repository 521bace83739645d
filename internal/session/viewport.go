package session

// Clamp bounds index into [0, max(0, maxIndex)]. Idempotent.
func Clamp(index, maxIndex int) int {
	if maxIndex < 0 || index < 0 {
		return 0
	}
	if index > maxIndex {
		return maxIndex
	}
	return index
}

// Window computes the half-open visible row range [start, end) for a list of
// the given length shown in capacity rows. The window is centered on the
// selection and shifted left at the tail; it always contains the selection
// when length > 0.
func Window(length, selected, capacity int) (start, end int) {
	if length <= capacity {
		return 0, length
	}
	selected = Clamp(selected, length-1)

	half := capacity / 2
	start = selected - half
	if start < 0 {
		start = 0
	}
	end = start + capacity
	if end > length {
		end = length
		start = end - capacity
		if start < 0 {
			start = 0
		}
	}
	return start, end
}
