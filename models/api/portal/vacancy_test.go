package portalapimodels

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVacancyDisplayTitle(t *testing.T) {
	t.Run("порядок локализаций ru en kk", func(t *testing.T) {
		v := Vacancy{TitleRu: "Разработчик", TitleEn: "Developer", TitleKk: "Әзірлеуші"}
		require.Equal(t, "Разработчик", v.DisplayTitle())
		v.TitleRu = ""
		require.Equal(t, "Developer", v.DisplayTitle())
		v.TitleEn = ""
		require.Equal(t, "Әзірлеуші", v.DisplayTitle())
	})
	t.Run("заглушка при пустых заголовках", func(t *testing.T) {
		require.Equal(t, "Без названия", Vacancy{}.DisplayTitleOrStub())
	})
}

func TestVacancySalaryString(t *testing.T) {
	t.Run("диапазон с группировкой разрядов", func(t *testing.T) {
		v := Vacancy{SalaryMin: 150000, SalaryMax: 250000, Currency: "KZT"}
		require.Equal(t, "150 000 - 250 000 KZT", v.SalaryString())
	})
	t.Run("валюта по умолчанию", func(t *testing.T) {
		v := Vacancy{SalaryMin: 1000, SalaryMax: 2000}
		require.Equal(t, "1 000 - 2 000 KZT", v.SalaryString())
	})
	t.Run("без одной из границ не указана", func(t *testing.T) {
		require.Equal(t, "Не указана", Vacancy{SalaryMin: 100000}.SalaryString())
		require.Equal(t, "Не указана", Vacancy{SalaryMax: 100000}.SalaryString())
	})
}

func TestVacancyTypeLabel(t *testing.T) {
	require.Equal(t, "Стажировка", VacancyTypeInternship.Label())
	require.Equal(t, "Удаленная работа", VacancyTypeRemote.Label())
	// неизвестный тип не прячется за заглушкой
	require.Equal(t, "FREELANCE", VacancyType("FREELANCE").Label())
}

func TestVacancyShortDescription(t *testing.T) {
	t.Run("короткое описание целиком", func(t *testing.T) {
		v := Vacancy{DescriptionRu: "Короткое описание"}
		require.Equal(t, "Короткое описание", v.ShortDescription())
	})
	t.Run("длинное обрезается до 150 символов", func(t *testing.T) {
		v := Vacancy{DescriptionRu: strings.Repeat("я", 200)}
		short := v.ShortDescription()
		require.True(t, strings.HasSuffix(short, "..."))
		require.Len(t, []rune(short), 153)
	})
}

func TestVacancyCompanyName(t *testing.T) {
	require.Equal(t, "Компания", Vacancy{}.CompanyName())
	v := Vacancy{Employer: &Employer{CompanyName: "Acme"}}
	require.Equal(t, "Acme", v.CompanyName())
}

func TestVacancyListUnmarshal(t *testing.T) {
	t.Run("чистый массив", func(t *testing.T) {
		list := VacancyList{}
		err := json.Unmarshal([]byte(`[{"id":1},{"id":2}]`), &list)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, int64(2), list[1].ID)
	})
	t.Run("постраничный ответ", func(t *testing.T) {
		list := VacancyList{}
		err := json.Unmarshal([]byte(`{"content":[{"id":7}],"totalElements":1}`), &list)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, int64(7), list[0].ID)
	})
}
