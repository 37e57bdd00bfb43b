package y2020

import (
	"regexp"
	"strconv"
	"strings"
)

// requiredFields must all be present; cid is optional.
var requiredFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

var (
	heightRe    = regexp.MustCompile(`^(\d+)(cm|in)$`)
	hairColorRe = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	passportRe  = regexp.MustCompile(`^[0-9]{9}$`)
)

var eyeColors = map[string]bool{
	"amb": true, "blu": true, "brn": true, "gry": true, "grn": true, "hzl": true, "oth": true,
}

// Passport is a set of key:value fields. A key given twice keeps its last
// value.
type Passport map[string]string

// ParsePassport splits a whitespace separated run of key:value fields.
// Tokens without a colon are ignored.
func ParsePassport(block string) Passport {
	p := make(Passport)
	for _, field := range strings.Fields(block) {
		key, value, ok := strings.Cut(field, ":")
		if !ok {
			continue
		}
		p[key] = value
	}
	return p
}

// Complete reports whether every required field is present.
func (p Passport) Complete() bool {
	for _, f := range requiredFields {
		if _, ok := p[f]; !ok {
			return false
		}
	}
	return true
}

// Valid reports whether the passport is complete and every required field
// holds an acceptable value.
func (p Passport) Valid() bool {
	return p.Complete() &&
		yearBetween(p["byr"], 1920, 2002) &&
		yearBetween(p["iyr"], 2010, 2020) &&
		yearBetween(p["eyr"], 2020, 2030) &&
		validHeight(p["hgt"]) &&
		hairColorRe.MatchString(p["hcl"]) &&
		eyeColors[p["ecl"]] &&
		passportRe.MatchString(p["pid"])
}

func yearBetween(v string, lo, hi int) bool {
	if len(v) != 4 {
		return false
	}
	n, err := strconv.Atoi(v)
	return err == nil && n >= lo && n <= hi
}

func validHeight(v string) bool {
	m := heightRe.FindStringSubmatch(v)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	if m[2] == "cm" {
		return n >= 150 && n <= 193
	}
	return n >= 59 && n <= 76
}

// CountPassports counts the passports among blocks accepted by ok.
func CountPassports(blocks []string, ok func(Passport) bool) int {
	count := 0
	for _, b := range blocks {
		if ok(ParsePassport(b)) {
			count++
		}
	}
	return count
}
