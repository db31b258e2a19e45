package service

import (
	"fmt"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

// NormalizeSections membersihkan input sections dari UI:
// dedup + sort, lalu validasi subset 1..sectionsCount.
// Hasil kosong = ValidationError (sesi tidak boleh tanpa section).
func NormalizeSections(raw []int, sectionsCount int) (pq.Int64Array, error) {
	if len(raw) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Sections tidak boleh kosong")
	}

	seen := make(map[int]bool, len(raw))
	out := make([]int, 0, len(raw))
	for _, n := range raw {
		if n < 1 || n > sectionsCount {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Section %d di luar rentang 1..%d", n, sectionsCount))
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Ints(out)

	arr := make(pq.Int64Array, 0, len(out))
	for _, n := range out {
		arr = append(arr, int64(n))
	}
	return arr, nil
}
