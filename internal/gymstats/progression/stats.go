package progression

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	// float64 sum, huge rep counts must not wrap
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}

// mode returns the most frequent value, ties go to the value seen first.
func mode(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	counts := make(map[float64]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	modeValue, maxCount := values[0], 0
	for _, v := range values {
		if c := counts[v]; c > maxCount {
			modeValue, maxCount = v, c
		}
	}
	return modeValue
}

// nextReps is one rep more than reps, capped at maxReps.
func nextReps(reps, maxReps int) int {
	if reps >= maxReps {
		return maxReps
	}
	return reps + 1
}

func repsOf(sets []WorkoutSet) []int {
	reps := make([]int, len(sets))
	for i, s := range sets {
		reps[i] = s.Reps
	}
	return reps
}

func weightsOf(sets []WorkoutSet) []float64 {
	weights := make([]float64, len(sets))
	for i, s := range sets {
		weights[i] = s.Weight
	}
	return weights
}

func maxOf(values []int) int {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
