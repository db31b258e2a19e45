// file: internals/features/taolu/scoring/scoring.go
package scoring

/* =========================================================
   Ekonomi poin taolu — fungsi murni, tidak pernah error,
   selalu dihitung ulang dari isi ledger (tidak disimpan
   sebagai kolom supaya tidak drift).
   ========================================================= */

const (
	// nilai satu deduction live
	DeductionValue = 2
	// modal poin satu sesi
	StartPoints = 10

	// bobot refinement lintas-sesi
	FixedBonus    = 5
	MissedPenalty = 5
	NewPenalty    = 3
)

// PointsLost: total poin hilang untuk n deduction live.
func PointsLost(liveCount int) int {
	return liveCount * DeductionValue
}

// PointsEarned: sisa poin sesi. Sengaja TIDAK di-clamp ke nol —
// skor negatif valid dan tampil apa adanya di UI.
func PointsEarned(liveCount int) int {
	return StartPoints - PointsLost(liveCount)
}

// RefinementNet: skor netto satu ronde window refinement.
// fixed/missed dihitung dari chip yang DIIKUTKAN coach saja;
// added = deduction baru yang ditambahkan retroaktif.
func RefinementNet(fixed, missed, added int) int {
	return fixed*FixedBonus - missed*MissedPenalty - added*NewPenalty
}
