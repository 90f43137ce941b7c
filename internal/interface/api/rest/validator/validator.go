package validator

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	domain "user-account-api/internal/domain/user"
	"user-account-api/internal/interface/api/rest/dto/auth"
	"user-account-api/internal/interface/api/rest/dto/user"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt safe

	minNameLen = 1
	maxNameLen = 64

	maxPageSize = 100
)

var (
	e164Re  = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)
	lowerer = cases.Lower(language.Und)
)

// NormalizeEmail trims and lowercases; Unicode-aware so the uniqueness check
// and the stored value always agree.
func NormalizeEmail(email string) string {
	return lowerer.String(strings.TrimSpace(email))
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ValidateCreateUser normalizes the request in place and returns per-field
// messages, nil when clean.
func ValidateCreateUser(r *user.CreateRequest) map[string]string {
	errs := make(map[string]string)

	r.Email = NormalizeEmail(r.Email)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Role = strings.TrimSpace(r.Role)

	if msg := emailError(r.Email, true); msg != "" {
		errs["email"] = msg
	}
	if msg := nameError("firstName", r.FirstName, true); msg != "" {
		errs["firstName"] = msg
	}
	if msg := nameError("lastName", r.LastName, true); msg != "" {
		errs["lastName"] = msg
	}
	if msg := passwordError(r.Password); msg != "" {
		errs["password"] = msg
	}
	if msg := phoneError(r.Phone); msg != "" {
		errs["phone"] = msg
	}
	if msg := roleError(r.Role); msg != "" {
		errs["role"] = msg
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidateUpdateUser checks only the fields present in the patch.
func ValidateUpdateUser(r *user.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.Email != nil {
		*r.Email = NormalizeEmail(*r.Email)
		if msg := emailError(*r.Email, true); msg != "" {
			errs["email"] = msg
		}
	}
	if r.FirstName != nil {
		*r.FirstName = strings.TrimSpace(*r.FirstName)
		if msg := nameError("firstName", *r.FirstName, true); msg != "" {
			errs["firstName"] = msg
		}
	}
	if r.LastName != nil {
		*r.LastName = strings.TrimSpace(*r.LastName)
		if msg := nameError("lastName", *r.LastName, true); msg != "" {
			errs["lastName"] = msg
		}
	}
	if r.Phone != nil {
		*r.Phone = strings.TrimSpace(*r.Phone)
		if msg := phoneError(*r.Phone); msg != "" {
			errs["phone"] = msg
		}
	}
	if r.Role != nil {
		*r.Role = strings.TrimSpace(*r.Role)
		// A present role cannot be blanked; it must be one of the known roles.
		switch *r.Role {
		case domain.RoleUser, domain.RoleAdmin:
		default:
			errs["role"] = "role must be either user or admin"
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateChangePassword(r user.ChangePasswordRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.OldPassword) == "" {
		errs["oldPassword"] = "oldPassword is required"
	}
	if msg := passwordError(r.NewPassword); msg != "" {
		errs["newPassword"] = msg
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidateListQuery parses the raw query strings into a domain filter,
// defaulting page=1 and limit=10.
func ValidateListQuery(search, role, isActive, page, limit string) (domain.Query, map[string]string) {
	errs := make(map[string]string)

	q := domain.Query{
		Search: strings.TrimSpace(search),
		Role:   strings.TrimSpace(role),
		Page:   1,
		Limit:  10,
	}

	if msg := roleError(q.Role); msg != "" {
		errs["role"] = msg
	}

	if isActive != "" {
		b, err := strconv.ParseBool(isActive)
		if err != nil {
			errs["isActive"] = "isActive must be true or false"
		} else {
			q.IsActive = &b
		}
	}

	if page != "" {
		p, err := strconv.Atoi(page)
		if err != nil || p < 1 {
			errs["page"] = "page must be a positive integer"
		} else {
			q.Page = p
		}
	}

	if limit != "" {
		l, err := strconv.Atoi(limit)
		if err != nil || l < 1 || l > maxPageSize {
			errs["limit"] = "limit must be between 1 and 100"
		} else {
			q.Limit = l
		}
	}

	if len(errs) == 0 {
		return q, nil
	}

	return q, errs
}

func ValidateLogin(r *auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	r.Email = NormalizeEmail(r.Email)

	if msg := emailError(r.Email, true); msg != "" {
		errs["email"] = msg
	}
	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func emailError(email string, required bool) string {
	if email == "" {
		if required {
			return "email is required"
		}
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "invalid email format"
	}
	return ""
}

func nameError(field, value string, required bool) string {
	if value == "" {
		if required {
			return field + " is required"
		}
		return ""
	}
	if l := utf8.RuneCountInString(value); l < minNameLen || l > maxNameLen {
		return field + " length must be 1-64 characters"
	}
	return ""
}

func passwordError(password string) string {
	if password == "" {
		return "password is required"
	}
	if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		return "password length must be 6-72 characters"
	}
	return ""
}

// phone is optional; when present it must be E.164.
func phoneError(phone string) string {
	if phone == "" {
		return ""
	}
	if !e164Re.MatchString(phone) {
		return "must be in E.164 format (e.g., +33788888888)"
	}
	return ""
}

// role is optional; when present it must be one of the known roles.
func roleError(role string) string {
	switch role {
	case "", domain.RoleUser, domain.RoleAdmin:
		return ""
	}
	return "role must be either user or admin"
}
