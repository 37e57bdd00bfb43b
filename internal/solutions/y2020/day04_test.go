package y2020

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fyrsmithlabs/aoc/internal/input"
)

const passportSample = `ecl:gry pid:860033327 eyr:2020 hcl:#fffffd
byr:1937 iyr:2017 cid:147 hgt:183cm

iyr:2013 ecl:amb cid:350 eyr:2023 pid:028048884
hcl:#cfa07d byr:1929

hcl:#ae17e1 iyr:2013
eyr:2024
ecl:brn pid:760753108 byr:1931
hgt:179cm

hcl:#cfa07d eyr:2025 pid:166559648
iyr:2011 ecl:brn hgt:59in
`

const invalidPassports = `eyr:1972 cid:100
hcl:#18171d ecl:amb hgt:170 pid:186cm iyr:2018 byr:1926

iyr:2019
hcl:#602927 eyr:1967 hgt:170cm
ecl:grn pid:012533040 byr:1946

hcl:dab227 iyr:2012
ecl:brn hgt:182cm pid:021572410 eyr:2020 byr:1992 cid:277

hgt:59cm ecl:zzz
eyr:2038 hcl:74454a iyr:2023
pid:3556412378 byr:2007
`

const validPassports = `pid:087499704 hgt:74in ecl:grn iyr:2012 eyr:2030 byr:1980
hcl:#623a2f

eyr:2029 ecl:blu cid:129 byr:1989
iyr:2014 pid:896056539 hcl:#a97842 hgt:165cm

hcl:#888785
hgt:164cm byr:2001 iyr:2015 cid:88
pid:545766238 ecl:hzl
eyr:2022

iyr:2010 hgt:158cm hcl:#b6652a ecl:blu byr:1944 eyr:2021 pid:093154719
`

func TestParsePassport(t *testing.T) {
	p := ParsePassport("ecl:gry pid:860033327 stray cid:147")
	assert.Equal(t, Passport{"ecl": "gry", "pid": "860033327", "cid": "147"}, p)
}

func TestCountPassports(t *testing.T) {
	assert.Equal(t, 2, CountPassports(input.Blocks(passportSample), Passport.Complete))
	assert.Equal(t, 0, CountPassports(input.Blocks(invalidPassports), Passport.Valid))
	assert.Equal(t, 4, CountPassports(input.Blocks(validPassports), Passport.Valid))

	all := input.Blocks(invalidPassports + "\n" + validPassports)
	assert.Len(t, all, 8)
	assert.Equal(t, 4, CountPassports(all, Passport.Valid))
}

func TestPassport_FieldRules(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) bool
		value string
		want  bool
	}{
		{"byr lower", func(v string) bool { return yearBetween(v, 1920, 2002) }, "1920", true},
		{"byr upper", func(v string) bool { return yearBetween(v, 1920, 2002) }, "2002", true},
		{"byr over", func(v string) bool { return yearBetween(v, 1920, 2002) }, "2003", false},
		{"byr short", func(v string) bool { return yearBetween(v, 1920, 2002) }, "192", false},
		{"hgt in", validHeight, "60in", true},
		{"hgt cm", validHeight, "190cm", true},
		{"hgt too tall", validHeight, "190in", false},
		{"hgt no unit", validHeight, "190", false},
		{"hcl", hairColorRe.MatchString, "#123abc", true},
		{"hcl bad char", hairColorRe.MatchString, "#123abz", false},
		{"hcl no hash", hairColorRe.MatchString, "123abc", false},
		{"ecl", func(v string) bool { return eyeColors[v] }, "brn", true},
		{"ecl unknown", func(v string) bool { return eyeColors[v] }, "wat", false},
		{"pid", passportRe.MatchString, "000000001", true},
		{"pid long", passportRe.MatchString, "0123456789", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.value), "%s=%q", tt.name, tt.value)
		})
	}
}

func TestPassport_ValidRequiresComplete(t *testing.T) {
	p := ParsePassport(strings.ReplaceAll(strings.TrimSpace(validPassports[:strings.Index(validPassports, "\n\n")]), "\n", " "))
	assert.True(t, p.Valid())

	delete(p, "hcl")
	assert.False(t, p.Complete())
	assert.False(t, p.Valid())
}
