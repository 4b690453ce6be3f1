package memutils

import (
	"math"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// RingStatistics describes the traffic through a ring allocator since it was created
type RingStatistics struct {
	Capacity        int
	AllocationCount int
	AllocationBytes int
	WrapCount       int
	// DiscardedBytes is the number of bytes skipped at the end of the ring when an allocation
	// did not fit in the remaining tail and the cursor was reset to the start
	DiscardedBytes    int
	AllocationSizeMin int
	AllocationSizeMax int
}

func (s *RingStatistics) Clear() {
	s.AllocationCount = 0
	s.AllocationBytes = 0
	s.WrapCount = 0
	s.DiscardedBytes = 0
	s.AllocationSizeMin = math.MaxInt
	s.AllocationSizeMax = 0
}

func (s *RingStatistics) AddAllocation(size int) {
	s.AllocationCount++
	s.AllocationBytes += size

	if size < s.AllocationSizeMin {
		s.AllocationSizeMin = size
	}

	if size > s.AllocationSizeMax {
		s.AllocationSizeMax = size
	}
}

func (s *RingStatistics) AddWrap(discarded int) {
	s.WrapCount++
	s.DiscardedBytes += discarded
}

func (s *RingStatistics) AddRingStatistics(other *RingStatistics) {
	s.Capacity += other.Capacity
	s.AllocationCount += other.AllocationCount
	s.AllocationBytes += other.AllocationBytes
	s.WrapCount += other.WrapCount
	s.DiscardedBytes += other.DiscardedBytes

	if other.AllocationSizeMin < s.AllocationSizeMin {
		s.AllocationSizeMin = other.AllocationSizeMin
	}

	if other.AllocationSizeMax > s.AllocationSizeMax {
		s.AllocationSizeMax = other.AllocationSizeMax
	}
}

// PrintJson populates a json object with these statistics
func (s *RingStatistics) PrintJson(json jwriter.ObjectState) {
	json.Name("Capacity").Int(s.Capacity)
	json.Name("Allocations").Int(s.AllocationCount)
	json.Name("AllocationBytes").Int(s.AllocationBytes)
	json.Name("Wraps").Int(s.WrapCount)
	json.Name("DiscardedBytes").Int(s.DiscardedBytes)

	if s.AllocationCount > 0 {
		json.Name("AllocationSizeMin").Int(s.AllocationSizeMin)
		json.Name("AllocationSizeMax").Int(s.AllocationSizeMax)
	}
}
