// Package heapcache is an in-process cache manager. A Manager owns a set of
// named caches declared in an XML or YAML configuration file; caches not
// declared explicitly can be added later from the default cache template.
//
// A minimal XML configuration:
//
//	<heapcache name="app" cleanupIntervalSeconds="30">
//	  <defaultCache timeToLiveSeconds="120"/>
//	  <cache name="users" timeToLiveSeconds="300"/>
//	  <cache name="countries" eternal="true"/>
//	</heapcache>
//
// Entries are held in github.com/patrickmn/go-cache stores, one per cache.
package heapcache
