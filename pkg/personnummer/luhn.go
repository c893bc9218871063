package personnummer

// luhn returns the check digit for a string of ASCII digits. Digits at even
// positions (0-based, from the left) are doubled and folded below ten.
func luhn(digits string) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		v := int(digits[i] - '0')
		if i%2 == 0 {
			v *= 2
		}
		if v > 9 {
			v -= 9
		}
		sum += v
	}
	return (10 - sum%10) % 10
}
