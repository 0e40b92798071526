// file: internals/helpers/clock.go
package helper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Booking times are hour-granular by contract: "HH:MM" strings whose minute
// component is deliberately ignored for slot and conflict arithmetic. Two
// bookings inside the same hour therefore collide with that whole hour.

// ParseClock validates an "HH:MM" string and returns its hour component.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Time must be in HH:MM format")
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Time must be in HH:MM format")
	}
	if m, err := strconv.Atoi(parts[1]); err != nil || m < 0 || m > 59 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Time must be in HH:MM format")
	}
	return hour, nil
}

// HourOf extracts the hour from an already-stored time string. Malformed
// values (which cannot be created through the API) read as hour 0.
func HourOf(s string) int {
	parts := strings.SplitN(s, ":", 2)
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return 0
	}
	return hour
}

// FormatHour renders an hour as "HH:00".
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
