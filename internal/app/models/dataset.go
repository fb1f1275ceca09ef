package models

import "sort"

// Dataset is the whole static schedule source, loaded once at startup.
type Dataset struct {
	DefaultBatch string                  `json:"default_batch,omitempty"`
	Batches      map[string][]ClassEntry `json:"batches"`
	Subjects     map[string]string       `json:"subjects,omitempty"`
	Teachers     map[string]string       `json:"teachers,omitempty"`
}

// BatchNames returns the batch keys in a stable order.
func (d *Dataset) BatchNames() []string {
	names := make([]string, 0, len(d.Batches))
	for name := range d.Batches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SubjectTitle returns the full subject title, or title itself when unknown.
func (d *Dataset) SubjectTitle(title, classType string) string {
	if full, ok := d.Subjects[title+":"+classType]; ok && full != "" {
		return full
	}
	if full, ok := d.Subjects[title]; ok && full != "" {
		return full
	}
	return title
}

// TeacherName returns the teacher's display name, or teacher itself when unknown.
func (d *Dataset) TeacherName(teacher string) string {
	if name, ok := d.Teachers[teacher]; ok && name != "" {
		return name
	}
	return teacher
}

// Merge folds display names into the lookup maps.
func (d *Dataset) Merge(names []DisplayName) {
	if d.Subjects == nil {
		d.Subjects = make(map[string]string)
	}
	if d.Teachers == nil {
		d.Teachers = make(map[string]string)
	}
	for _, name := range names {
		switch name.Kind {
		case DisplayNameKindSubject:
			d.Subjects[name.Key] = name.Display
		case DisplayNameKindTeacher:
			d.Teachers[name.Key] = name.Display
		}
	}
}
