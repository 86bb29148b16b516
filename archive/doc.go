// Package archive provides an immutable-during-scan, in-memory archive model.
//
// An [Archive] is an insertion-ordered mapping from absolute slash paths
// (e.g. "/WEB-INF/classes/a.class") to [Node] values. Every node carries a
// single [Asset] that produces its content on demand. An asset may itself be
// a nested archive ([ArchiveAsset]), which makes the model a tree:
//
//	war := archive.New("app.war", archive.KindWeb)
//	war.AddBytes("/WEB-INF/beans.xml", beansXML)
//	war.AddBytes("/WEB-INF/classes/a.class", classA)
//
//	jar := archive.New("lib.jar", archive.KindLibrary)
//	jar.AddBytes("/META-INF/beans.xml", beansXML)
//	war.AddArchive("/WEB-INF/lib/lib.jar", jar)
//
// Lookups are filters over the flat mapping ([Archive.Content]) rather than a
// filesystem walk. Content is never read until a caller opens it.
package archive
