package sim

import (
	"reflect"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

type singletonEntry struct {
	typ     reflect.Type
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// Storage holds the singleton resources shared by the systems of one
// scheduler: one value per Go type.
type Storage struct {
	singletons *intmap.Map[uint64, *singletonEntry]
	order      []reflect.Type
}

// NewStorage creates an empty storage.
func NewStorage() *Storage {
	return &Storage{
		singletons: intmap.New[uint64, *singletonEntry](16),
	}
}

// AddSingleton stores value as the singleton of its type, replacing any
// previous value in place so existing Singleton accessors stay valid.
func (s *Storage) AddSingleton(value any) {
	if value == nil {
		panic("cannot add a nil singleton")
	}

	typ := reflect.TypeOf(value)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
		value = reflect.ValueOf(value).Elem().Interface()
	}

	if entry := s.getSingletonEntry(typ); entry != nil {
		entry.value.Elem().Set(reflect.ValueOf(value))
		return
	}

	ptr := reflect.New(typ)
	ptr.Elem().Set(reflect.ValueOf(value))

	s.singletons.Put(typeKey(typ), &singletonEntry{
		typ:     typ,
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	})
	s.order = append(s.order, typ)
}

func (s *Storage) getSingletonEntry(typ reflect.Type) *singletonEntry {
	entry, ok := s.singletons.Get(typeKey(typ))
	if !ok {
		return nil
	}
	return entry
}

// ReadSingleton points *target at the stored singleton of type T.
// Returns false, leaving target untouched, if no such singleton exists.
//
//	var ball *Ball
//	if storage.ReadSingleton(&ball) { ... }
func (s *Storage) ReadSingleton(target any) bool {
	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr || targetValue.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	entry := s.getSingletonEntry(targetValue.Elem().Type().Elem())
	if entry == nil {
		return false
	}

	targetValue.Elem().Set(entry.value)
	return true
}

// StorageStats is a snapshot of what a Storage holds.
type StorageStats struct {
	SingletonCount int
	SingletonTypes []string
}

// CollectStats reports the singletons currently stored, sorted by type name.
func (s *Storage) CollectStats() *StorageStats {
	names := make([]string, 0, len(s.order))
	for _, typ := range s.order {
		names = append(names, typ.String())
	}
	sort.Strings(names)

	return &StorageStats{
		SingletonCount: len(s.order),
		SingletonTypes: names,
	}
}

// ReadSingleton returns the singleton of type T, or nil if it is missing.
func ReadSingleton[T any](storage *Storage) *T {
	var value *T
	if !storage.ReadSingleton(&value) {
		return nil
	}
	return value
}
