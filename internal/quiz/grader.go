package quiz

import "strings"

// Grade reports whether r is a correct answer to q. It never fails: unknown
// question types and responses of the wrong shape are incorrect.
func Grade(q Question, r Response) bool {
	switch q.Type {
	case TypeChoice:
		if r.Kind != ResponseChoice || q.CorrectIndex == nil {
			return false
		}
		return r.Index == *q.CorrectIndex
	case TypeText:
		if r.Kind != ResponseText || q.CorrectAnswer == nil {
			return false
		}
		return strings.EqualFold(strings.TrimSpace(r.Text), strings.TrimSpace(*q.CorrectAnswer))
	default:
		return false
	}
}
