package helpers

import (
	"strconv"
	"strings"
	"time"
)

// FormatGrouped форматирует число с разделением тысяч пробелом (150000 -> "150 000")
func FormatGrouped(n int64) string {
	str := strconv.FormatInt(n, 10)
	negative := false
	if strings.HasPrefix(str, "-") {
		negative = true
		str = str[1:]
	}
	var b strings.Builder
	rem := len(str) % 3
	if rem > 0 {
		b.WriteString(str[:rem])
	}
	for i := rem; i < len(str); i += 3 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(str[i : i+3])
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}

// SplitSkills разбирает список навыков из строки с разделителем-запятой,
// пустые элементы отбрасываются
func SplitSkills(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		skills = append(skills, p)
	}
	return skills
}

func JoinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}

// IntPtrFromString не возвращает ошибку - нечисловое значение считается незаполненным
func IntPtrFromString(value string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &v
}

func FloatPtrFromString(value string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return nil
	}
	return &v
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParsePortalTime разбирает дату/время из ответа бекенда или из формы
func ParsePortalTime(timeStr string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, timeStr)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
