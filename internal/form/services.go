package form

import (
	"maps"
	"slices"
	"strings"
)

// Services is the services and certifications record (step 5).
type Services struct {
	Selected         map[string]map[string]bool `json:"services"`
	Other            []string                   `json:"otherServices"`
	Standards        []string                   `json:"selectedStandards"`
	StrokeCertExpiry string                     `json:"strokeCertExpiry"`
	ApplicationDate  string                     `json:"applicationDate"`
	Thrombolytics    DateList                   `json:"thrombolytics"`
	Thrombectomies   DateList                   `json:"thrombectomies"`
}

// Clone returns a deep copy.
func (s Services) Clone() Services {
	out := s
	if s.Selected != nil {
		out.Selected = make(map[string]map[string]bool, len(s.Selected))
		for cat, names := range s.Selected {
			out.Selected[cat] = maps.Clone(names)
		}
	}
	out.Other = slices.Clone(s.Other)
	out.Standards = slices.Clone(s.Standards)
	out.Thrombolytics = slices.Clone(s.Thrombolytics)
	out.Thrombectomies = slices.Clone(s.Thrombectomies)
	return out
}

// IsSelected reports whether the service in category is checked.
func (s Services) IsSelected(category, service string) bool {
	return s.Selected[category][service]
}

// ToggleService flips the selection of a service.
func (s *Services) ToggleService(category, service string) {
	if s.Selected == nil {
		s.Selected = make(map[string]map[string]bool)
	}
	if s.Selected[category] == nil {
		s.Selected[category] = make(map[string]bool)
	}
	s.Selected[category][service] = !s.Selected[category][service]
}

// SelectedNames returns the checked service names in catalog order.
// Services missing from the catalog follow, sorted.
func (s Services) SelectedNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, cat := range ServiceCatalog {
		for _, svc := range cat.Services {
			seen[cat.Name+"\x00"+svc] = true
			if s.IsSelected(cat.Name, svc) {
				names = append(names, svc)
			}
		}
	}
	var extra []string
	for cat, svcs := range s.Selected {
		for svc, on := range svcs {
			if on && !seen[cat+"\x00"+svc] {
				extra = append(extra, svc)
			}
		}
	}
	slices.Sort(extra)
	return append(names, extra...)
}

// AddOther appends a free-text service. Blank and duplicate entries are ignored.
func (s *Services) AddOther(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || slices.Contains(s.Other, name) {
		return false
	}
	s.Other = append(s.Other, name)
	return true
}

// RemoveOther deletes a free-text service.
func (s *Services) RemoveOther(name string) bool {
	i := slices.Index(s.Other, name)
	if i < 0 {
		return false
	}
	s.Other = slices.Delete(s.Other, i, i+1)
	return true
}

// SetOther replaces the free-text services, keeping the first occurrence of
// each non-blank line.
func (s *Services) SetOther(names []string) {
	s.Other = nil
	for _, n := range names {
		s.AddOther(n)
	}
}

// HasStandard reports whether std is selected.
func (s Services) HasStandard(std string) bool {
	return slices.Contains(s.Standards, std)
}

// ToggleStandard adds or removes a standard, keeping catalog order.
func (s *Services) ToggleStandard(std string) {
	if i := slices.Index(s.Standards, std); i >= 0 {
		s.Standards = slices.Delete(s.Standards, i, i+1)
		return
	}
	s.Standards = append(s.Standards, std)
	slices.SortStableFunc(s.Standards, func(a, b string) int {
		return standardRank(a) - standardRank(b)
	})
}

func standardRank(std string) int {
	if i := slices.Index(Standards, std); i >= 0 {
		return i
	}
	return len(Standards)
}

// AddThrombolytic records a thrombolytic administration date.
func (s *Services) AddThrombolytic(iso string) (bool, error) {
	return s.Thrombolytics.AddCapped(iso, MaxThrombolytics)
}

// AddThrombectomy records a thrombectomy date.
func (s *Services) AddThrombectomy(iso string) (bool, error) {
	return s.Thrombectomies.AddCapped(iso, MaxThrombectomies)
}
