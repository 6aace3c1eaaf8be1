package cache

type Cache interface {
	Get(key interface{}) (interface{}, bool)
	Add(key, value interface{})
	Keys() []interface{}
	Delete(key interface{})
	Len() int
}
