package mathutil

// Cycle shape constants
const (
	cycleMidpoint = 0.5 // Linear progress at which the triangle wave turns around
	riseSlope     = 2.0 // Triangle wave slope on either half of the cycle
	fallOffset    = 2.0 // Intercept of the falling half: 2 - 2c
)

// Common division constants
const (
	halfDivisor = 2.0 // Division by 2
)
