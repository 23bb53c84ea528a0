package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/config"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

// GenericFlavor is the pessimistic profile used for unknown servers.
const GenericFlavor = "generic"

type capabilityProfile struct {
	match   []string
	pattern *regexp.Regexp
	caps    models.Capabilities
}

func (p capabilityProfile) matches(serverURL string) bool {
	if p.pattern != nil && p.pattern.MatchString(serverURL) {
		return true
	}

	lower := strings.ToLower(serverURL)
	for _, m := range p.match {
		if m != "" && strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}

	return false
}

var builtinProfiles = []capabilityProfile{
	{
		match: []string{"baikal", "/dav.php"},
		caps: models.Capabilities{
			Flavor:                       "baikal",
			SupportsAccessControl:        true,
			SupportsMultipleAddressBooks: true,
			DefaultAddressBook:           "contacts",
			ReadWriteAddressBook:         "contacts",
			ReadOnlyAddressBook:          "shared-contacts",
		},
	},
	{
		match: []string{"nextcloud", "/remote.php/dav"},
		caps: models.Capabilities{
			Flavor:                       "nextcloud",
			SupportsMultipleAddressBooks: true,
			DefaultAddressBook:           "contacts",
			ReadWriteAddressBook:         "contacts",
		},
	},
	{
		match: []string{"icloud.com"},
		caps: models.Capabilities{
			Flavor:             "icloud",
			DefaultAddressBook: "card",
		},
	},
	{
		match: []string{"google.com", "googleusercontent.com"},
		caps: models.Capabilities{
			Flavor:             "google",
			DefaultAddressBook: models.DefaultAddressBookName,
		},
	},
	{
		match: []string{"radicale"},
		caps: models.Capabilities{
			Flavor:                       "radicale",
			SupportsMultipleAddressBooks: true,
			DefaultAddressBook:           models.DefaultAddressBookName,
		},
	},
}

// CapabilityRegistry classifies remote servers into capability records.
// Profiles from the profiles file are consulted before the built-in ones.
type CapabilityRegistry struct {
	profiles []capabilityProfile
}

// NewCapabilityRegistry compiles the custom profiles on top of the built-in
// baikal, nextcloud, icloud, google and radicale profiles.
func NewCapabilityRegistry(custom []config.CapabilityProfile) (*CapabilityRegistry, error) {
	profiles := make([]capabilityProfile, 0, len(custom)+len(builtinProfiles))

	for _, c := range custom {
		p := capabilityProfile{
			match: c.Match,
			caps: models.Capabilities{
				Flavor:                       c.Name,
				SupportsAccessControl:        c.AccessControl,
				SupportsMultipleAddressBooks: c.MultipleAddressBooks,
				DefaultAddressBook:           c.Default,
				ReadWriteAddressBook:         c.ReadWrite,
				ReadOnlyAddressBook:          c.ReadOnly,
			},
		}
		if c.Pattern != "" {
			re, err := regexp.Compile(c.Pattern)
			if err != nil {
				return nil, fmt.Errorf("capability profile %q: %w", c.Name, err)
			}
			p.pattern = re
		}
		profiles = append(profiles, p)
	}

	return &CapabilityRegistry{profiles: append(profiles, builtinProfiles...)}, nil
}

// Resolve returns the capability record for serverURL. An explicit override
// wins, then a profile named by profile, then the first profile whose URL
// rule matches. Unknown servers get the pessimistic generic profile.
func (r *CapabilityRegistry) Resolve(serverURL string, override *models.Capabilities, profile string) (models.Capabilities, error) {
	if override != nil {
		caps := *override
		if caps.Flavor == "" {
			caps.Flavor = "custom"
		}
		return normalizeCapabilities(caps), nil
	}

	if profile != "" {
		caps, ok := r.Profile(profile)
		if !ok {
			return models.Capabilities{}, fmt.Errorf("%w: unknown capability profile %q", ErrInvalidConnectConfig, profile)
		}
		return caps, nil
	}

	for _, p := range r.profiles {
		if p.matches(serverURL) {
			return normalizeCapabilities(p.caps), nil
		}
	}

	return GenericCapabilities(), nil
}

// Profile returns the profile with the given flavor name.
func (r *CapabilityRegistry) Profile(name string) (models.Capabilities, bool) {
	if name == GenericFlavor {
		return GenericCapabilities(), true
	}

	for _, p := range r.profiles {
		if strings.EqualFold(p.caps.Flavor, name) {
			return normalizeCapabilities(p.caps), true
		}
	}

	return models.Capabilities{}, false
}

// GenericCapabilities is the safe default: no access control, a single
// address book and client-side protection.
func GenericCapabilities() models.Capabilities {
	return normalizeCapabilities(models.Capabilities{
		Flavor:             GenericFlavor,
		DefaultAddressBook: models.DefaultAddressBookName,
	})
}

// Refine downgrades the claims of caps that the discovered address books do
// not demonstrate. Access control needs the read-only book to exist, and
// multiple address books need more than one book. The default book is
// replaced by a discovered one when it is missing.
func Refine(caps models.Capabilities, discovered []models.AddressBook) models.Capabilities {
	names := make(map[string]struct{}, len(discovered))
	for _, b := range discovered {
		names[b.Name] = struct{}{}
	}
	has := func(name string) bool {
		_, ok := names[name]
		return name != "" && ok
	}

	if len(discovered) < 2 {
		caps.SupportsMultipleAddressBooks = false
	}
	if !has(caps.ReadOnlyAddressBook) || !caps.SupportsMultipleAddressBooks {
		caps.SupportsAccessControl = false
		caps.ReadOnlyAddressBook = ""
	}
	if !has(caps.ReadWriteAddressBook) {
		caps.ReadWriteAddressBook = ""
	}
	if len(discovered) > 0 && !has(caps.DefaultAddressBook) {
		caps.DefaultAddressBook = firstWritable(discovered)
	}

	return normalizeCapabilities(caps)
}

func firstWritable(books []models.AddressBook) string {
	for _, b := range books {
		if !b.ReadOnly {
			return b.Name
		}
	}
	return books[0].Name
}

// normalizeCapabilities makes the record self-consistent: access control
// requires a read-only book and implies multiple books, and the protection
// strategy follows from access control.
func normalizeCapabilities(caps models.Capabilities) models.Capabilities {
	if caps.SupportsAccessControl && caps.ReadOnlyAddressBook == "" {
		caps.SupportsAccessControl = false
	}
	if caps.SupportsAccessControl {
		caps.SupportsMultipleAddressBooks = true
	}

	if caps.DefaultAddressBook == "" {
		caps.DefaultAddressBook = caps.ReadWriteAddressBook
	}
	if caps.DefaultAddressBook == "" {
		caps.DefaultAddressBook = models.DefaultAddressBookName
	}

	caps.ProtectionStrategy = models.ProtectionClientSide
	if caps.SupportsAccessControl {
		caps.ProtectionStrategy = models.ProtectionServerSide
	}

	return caps
}

// routeAddressBook picks the address book a contact is pushed to. SHARED
// contacts go to the read-only book when the server enforces access
// control; everything else goes to the read-write book. Both fall back to
// the default book.
func routeAddressBook(c models.LocalContact, caps models.Capabilities) string {
	if c.Ownership == models.OwnershipShared {
		if caps.SupportsAccessControl && caps.ReadOnlyAddressBook != "" {
			return caps.ReadOnlyAddressBook
		}
		return defaultBook(caps)
	}

	if caps.ReadWriteAddressBook != "" && (caps.SupportsMultipleAddressBooks || caps.SupportsAccessControl) {
		return caps.ReadWriteAddressBook
	}
	return defaultBook(caps)
}

func defaultBook(caps models.Capabilities) string {
	if caps.DefaultAddressBook != "" {
		return caps.DefaultAddressBook
	}
	return models.DefaultAddressBookName
}
