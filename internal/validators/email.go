package validators

import "strings"

// IsEmailValid is a cheap structural check: one @, a non-empty local
// part and a dotted domain. Deliverability is the mail sink's problem.
func IsEmailValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}

	if strings.ContainsAny(email, " \t\r\n") {
		return false
	}

	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
