package services

const (
	basePoints = 10

	weekStreakThreshold    = 7
	monthStreakThreshold   = 30
	hundredStreakThreshold = 100

	weekStreakBonus    = 20
	monthStreakBonus   = 50
	hundredStreakBonus = 100

	incrementalBonusCap = 10
)

// AwardPoints returns the points earned by a check-in that brings the streak
// to the given length. Threshold bonuses stack: a 100-day streak earns the
// 7-day, 30-day, and 100-day bonuses together.
func AwardPoints(streak int) int {
	if streak < 1 {
		return 0
	}

	points := basePoints
	if streak >= weekStreakThreshold {
		points += weekStreakBonus
	}
	if streak >= monthStreakThreshold {
		points += monthStreakBonus
	}
	if streak >= hundredStreakThreshold {
		points += hundredStreakBonus
	}

	incremental := streak - 1
	if incremental > incrementalBonusCap {
		incremental = incrementalBonusCap
	}
	return points + incremental
}
