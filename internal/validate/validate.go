package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLen    = 8
	MaxPasswordLen    = 72
	MaxUsernameLen    = 150
	MaxNameLen        = 150
	MaxPhoneLen       = 20
	MaxCityLen        = 100
	MaxTitleLen       = 200
	MaxDescriptionLen = 1000
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9@.+_-]+$`)

// reserved holds the first path segments taken by fixed routes; a user with one of these names would have an
// unreachable profile.
var reserved = map[string]struct{}{
	"login":    {},
	"logout":   {},
	"register": {},
	"static":   {},
	"media":    {},
	"metrics":  {},
}

// FieldErrors maps a form field name to the problem found in it.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return strings.Join(parts, "; ")
}

// add records err under field, keeping the first error reported for it.
func (f FieldErrors) add(field string, err error) {
	if err == nil {
		return
	}
	if _, ok := f[field]; !ok {
		f[field] = err.Error()
	}
}

// Err returns nil when no field failed validation.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

func SignUpForm(username, password1, password2, email, firstName, lastName, phone, city string) error {
	errs := FieldErrors{}
	errs.add("username", Username(username))
	errs.add("email", OptionalEmail(email))
	errs.add("first_name", MaxLen(firstName, MaxNameLen))
	errs.add("last_name", MaxLen(lastName, MaxNameLen))
	errs.add("phone", MaxLen(phone, MaxPhoneLen))
	errs.add("city", MaxLen(city, MaxCityLen))
	errs.add("password1", Password(password1))
	if password1 != password2 {
		errs.add("password2", errors.New("the two password fields didn't match"))
	}
	return errs.Err()
}

func ProfileForm(firstName, lastName, email, phone, city string) error {
	errs := FieldErrors{}
	errs.add("first_name", MaxLen(firstName, MaxNameLen))
	errs.add("last_name", MaxLen(lastName, MaxNameLen))
	errs.add("email", OptionalEmail(email))
	errs.add("phone", MaxLen(phone, MaxPhoneLen))
	errs.add("city", MaxLen(city, MaxCityLen))
	return errs.Err()
}

func BlogForm(title, description string) error {
	errs := FieldErrors{}
	errs.add("title", Title(title))
	errs.add("description", MaxLen(description, MaxDescriptionLen))
	return errs.Err()
}

func ArticleForm(title, content string) error {
	errs := FieldErrors{}
	errs.add("title", Title(title))
	if strings.TrimSpace(content) == "" {
		errs.add("content", errors.New("this field is required"))
	}
	return errs.Err()
}

func Password(password string) error {
	l := len(password)
	switch {
	case l == 0:
		return errors.New("empty password")
	case l < MinPasswordLen:
		return fmt.Errorf("password too short; min %d characters", MinPasswordLen)
	case l > MaxPasswordLen:
		return fmt.Errorf("password too long; max %d characters", MaxPasswordLen)
	}
	return nil
}

func Email(email string) error {
	if len(email) == 0 {
		return errors.New("empty email")
	}
	_, err := mail.ParseAddress(email)

	return err
}

func OptionalEmail(email string) error {
	if email == "" {
		return nil
	}
	return Email(email)
}

func Username(username string) error {
	if l := len(username); l == 0 {
		return errors.New("empty username")
	} else if l > MaxUsernameLen {
		return fmt.Errorf("username too long; max %d characters", MaxUsernameLen)
	}

	if !usernameRe.MatchString(username) {
		return errors.New("only letters, digits and @/./+/-/_ are allowed")
	}
	// "." and ".." would be removed from profile URLs by path cleaning.
	if strings.Trim(username, ".") == "" {
		return errors.New("a username cannot consist of dots only")
	}
	if _, ok := reserved[strings.ToLower(username)]; ok {
		return errors.New("this username is reserved")
	}
	return nil
}

func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("this field is required")
	}
	return MaxLen(title, MaxTitleLen)
}

// MaxLen counts characters, not bytes.
func MaxLen(s string, max int) error {
	if utf8.RuneCountInString(s) > max {
		return fmt.Errorf("too long; max %d characters", max)
	}
	return nil
}
