package scoring

// Band is a qualitative result bucket.
type Band int

const (
	BandNeedsWork Band = iota // below 70%
	BandGood                  // 70–89%
	BandExcellent             // 90% and above
)

// Band thresholds in percent.
const (
	GoodThreshold      = 70
	ExcellentThreshold = 90
)

const (
	commentExcellent = "Відмінний результат! Ви чудово підготовлені до НМТ."
	commentGood      = "Гарний результат. Зверніть увагу на завдання з помилками, щоб закріпити матеріал."
	commentNeedsWork = "Є над чим попрацювати. Проаналізуйте завдання з помилками та повторіть відповідні теми."
)

// BandFor buckets a percentage.
func BandFor(percent int) Band {
	switch {
	case percent >= ExcellentThreshold:
		return BandExcellent
	case percent >= GoodThreshold:
		return BandGood
	default:
		return BandNeedsWork
	}
}

// Comment returns the message shown for a percentage.
func Comment(percent int) string {
	switch BandFor(percent) {
	case BandExcellent:
		return commentExcellent
	case BandGood:
		return commentGood
	default:
		return commentNeedsWork
	}
}
