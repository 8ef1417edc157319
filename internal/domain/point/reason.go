package point

import "errors"

var ErrUnknownReason = errors.New("unknown point reason")

type Reason string

const (
	ReasonFirstUseBonus     Reason = "first_use_bonus"
	ReasonLectureCompleted  Reason = "lecture_completed"
	ReasonCancelBeforeStart Reason = "cancel_before_15min"
	ReasonReportMisuse      Reason = "report_misuse"
	ReasonNoCheckout        Reason = "no_checkout"
	ReasonNoAuthInTime      Reason = "no_auth_in_time"
)

var earnTable = map[Reason]int{
	ReasonLectureCompleted:  5,
	ReasonCancelBeforeStart: 5,
	ReasonReportMisuse:      10,
}

var deductTable = map[Reason]int{
	ReasonNoCheckout:   15,
	ReasonNoAuthInTime: 10,
}

func ParseEarnReason(s string) (Reason, error) {
	r := Reason(s)
	if _, ok := earnTable[r]; !ok {
		return "", ErrUnknownReason
	}
	return r, nil
}

func ParseDeductReason(s string) (Reason, error) {
	r := Reason(s)
	if _, ok := deductTable[r]; !ok {
		return "", ErrUnknownReason
	}
	return r, nil
}

// IsKnown reports whether the reason belongs to either table.
func IsKnown(s string) bool {
	_, earn := earnTable[Reason(s)]
	_, deduct := deductTable[Reason(s)]
	return earn || deduct
}

// Delta is the signed nominal change recorded for the reason.
func (r Reason) Delta() int {
	if r == ReasonFirstUseBonus {
		return Baseline
	}
	if v, ok := earnTable[r]; ok {
		return v
	}
	return -deductTable[r]
}

func (r Reason) String() string {
	return string(r)
}
