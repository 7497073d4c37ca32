package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeString represents a wall-clock time of day in "HH:MM" format
type TimeString string

// timePattern допускает опциональный ведущий ноль: "9:05" и "09:05" эквивалентны
var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// IsValidTime проверяет, что строка является корректным временем в формате HH:MM
// (часы 00-23, минуты 00-59)
func IsValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// NewTimeStringFromString парсит и нормализует строку времени
// Возвращает каноническую форму с ведущими нулями ("9:05" -> "09:05")
// Нормализация идемпотентна: повторный вызов возвращает ту же строку
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	if !IsValidTime(s) {
		return "", fmt.Errorf("invalid time format %q, expected HH:MM", s)
	}

	parts := strings.SplitN(s, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])

	return TimeString(fmt.Sprintf("%02d:%02d", hours, minutes)), nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут от полуночи
// Предполагает, что значение уже валидировано и нормализовано
func (t TimeString) Minutes() int {
	parts := strings.SplitN(string(t), ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}

// AddMinutes возвращает время через m минут
// Возвращает ошибку при выходе за границу суток - время не переходит через полночь
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total := t.Minutes() + m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("time %s + %d minutes is out of day range", t, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Overlap проверяет пересечение двух полуинтервалов [aStart, aEnd) и [bStart, bEnd)
// Граничащие интервалы (aEnd == bStart) НЕ пересекаются - это позволяет
// бронированиям и тарифным окнам стоять вплотную друг к другу
func Overlap(aStart, aEnd, bStart, bEnd TimeString) bool {
	return aStart.Minutes() < bEnd.Minutes() && bStart.Minutes() < aEnd.Minutes()
}
