// pkg/scroll/wrap.go
package scroll

// Direction — направление прокрутки оси.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	}
	return "None"
}

// NormalizeIndex приводит произвольный (в том числе отрицательный)
// индекс к диапазону [0, n).
func NormalizeIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// floorDiv — целочисленное деление с округлением вниз (для отрицательных тоже).
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// windowUpperBound возвращает верхнюю границу окна относительных слотов.
// Окно всегда длины n, так что ровно одна обёрнутая копия каждого слайда
// в него попадает. Границы асимметричны: при прокрутке вправо впереди
// держим ahead слайдов, при прокрутке влево позади держим behind —
// это защищает от "затыка" при резкой смене направления.
// Граница зажимается в [0, n-1]: относительный слот 0 обязан оставаться
// внутри окна при любом числе слайдов, иначе текущий слайд переедет на
// полный оборот.
func windowUpperBound(dir Direction, n, ahead, behind int) int {
	if dir == DirectionLeft {
		u := n - 1 - behind
		if u < 0 {
			u = 0
		}
		return u
	}
	// None трактуем как Right: этим же значением сеется стартовая раскладка.
	u := ahead
	if u > n-1 {
		u = n - 1
	}
	return u
}

// SlotMultiplier выбирает для слайда с порядковым номером ordinal целое
// число полных оборотов m так, что относительный слот
// m*n + ordinal - current попадает в окно (U-n, U].
func SlotMultiplier(ordinal, current, n int, dir Direction, ahead, behind int) int {
	if n <= 0 {
		return 0
	}
	u := windowUpperBound(dir, n, ahead, behind)
	return floorDiv(u-ordinal+current, n)
}

// Slot возвращает абсолютный слот слайда: m*n + ordinal.
// Пиксельная позиция слайда — Slot * spacing.
func Slot(ordinal, current, n int, dir Direction, ahead, behind int) int {
	return SlotMultiplier(ordinal, current, n, dir, ahead, behind)*n + ordinal
}

// NearestWrappedIndex возвращает сырой индекс, ближайший к current,
// чья нормализованная форма равна target. Используется для scroll-to:
// целевой слайд едем искать по кратчайшей дуге, а не через весь круг.
func NearestWrappedIndex(current, target, n int) int {
	if n <= 0 {
		return current
	}
	d := NormalizeIndex(target-current, n)
	if d > n/2 {
		d -= n
	}
	return current + d
}
