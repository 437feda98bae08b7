// Package roster is a small student directory built on the sorted
// collections: students are indexed by identifier in a dictionary, and
// their names are kept in a sorted list.
package roster

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/amp-labs/amp-sorted/compare"
	"github.com/amp-labs/amp-sorted/dictionary"
	"github.com/amp-labs/amp-sorted/errors"
	"github.com/amp-labs/amp-sorted/sortable"
	"github.com/amp-labs/amp-sorted/sortedlist"
	"gopkg.in/yaml.v3"
)

// Name is a person's first and last name. Names sort by last name, then
// first name.
type Name struct {
	First string `yaml:"first"`
	Last  string `yaml:"last"`
}

var _ sortable.Sortable[Name] = Name{}

func (n Name) String() string {
	return n.First + " " + n.Last
}

func (n Name) Equals(other Name) bool {
	return n == other
}

func (n Name) LessThan(other Name) bool {
	if n.Last != other.Last {
		return n.Last < other.Last
	}

	return n.First < other.First
}

// StudentID identifies a student. IDs sort naturally, so "S2" comes before "S10".
type StudentID string

var _ sortable.Sortable[StudentID] = StudentID("")

func (id StudentID) Equals(other StudentID) bool {
	return id == other
}

func (id StudentID) LessThan(other StudentID) bool {
	return sortable.NaturalString(id).LessThan(sortable.NaturalString(other))
}

// Student pairs a name with an identifier.
type Student struct {
	Name Name      `yaml:"name"`
	ID   StudentID `yaml:"id"`
}

var _ compare.Comparable[Student] = Student{}

func (s Student) Equals(other Student) bool {
	return s.ID == other.ID && s.Name == other.Name
}

// String renders the student as "<id> <first> <last>".
func (s Student) String() string {
	return fmt.Sprintf("%s %s", s.ID, s.Name)
}

type document struct {
	Students []Student `yaml:"students"`
}

// Load reads a YAML roster of the form
//
//	students:
//	  - id: S1
//	    name: {first: Ada, last: Lovelace}
//
// Exact duplicates are dropped. Returns ErrInvalidArgument if any student
// has an empty id.
func Load(r io.Reader) ([]Student, error) {
	var doc document

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("decoding roster: %w", err)
	}

	for i, s := range doc.Students {
		if s.ID == "" {
			return nil, fmt.Errorf("%w: student %d (%s) has no id", errors.ErrInvalidArgument, i+1, s.Name)
		}
	}

	return Dedupe(doc.Students), nil
}

// Dedupe returns students without exact repeats, keeping first occurrences in order.
func Dedupe(students []Student) []Student {
	out := make([]Student, 0, len(students))

	for _, s := range students {
		if compare.IndexOf(out, s) < 0 {
			out = append(out, s)
		}
	}

	return out
}

// Index adds every student to d keyed by id. A later student with an id
// already present replaces the earlier one; the replaced ids are returned
// in the order they were hit.
func Index(students []Student, d dictionary.Dictionary[StudentID, Student]) ([]StudentID, error) {
	var replaced []StudentID

	for _, s := range students {
		prev, err := d.Add(s.ID, s)
		if err != nil {
			return replaced, fmt.Errorf("indexing student %s: %w", s.ID, err)
		}

		if prev.NonEmpty() {
			replaced = append(replaced, s.ID)
		}
	}

	return replaced, nil
}

// Lookup returns the student indexed under id. When d has no such student
// it returns a Student carrying only the id, so callers can still print it.
func Lookup(d dictionary.Dictionary[StudentID, Student], id StudentID) Student {
	return d.GetValue(id).GetOrElse(Student{ID: id})
}

// Directory returns the students' names in alphabetical order, duplicates included.
func Directory(students []Student) *sortedlist.SortedList[Name] {
	names := sortedlist.New[Name]()
	for _, s := range students {
		names.Add(s.Name)
	}

	return names
}
