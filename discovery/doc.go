// Package discovery locates bean descriptor marker files in an in-memory
// archive tree and hands their locations and the archive's class files to
// external consumers.
//
// A [Scanner] classifies each archive by [archive.Kind]:
//
//   - Library archives (jars) are checked for /META-INF/beans.xml.
//   - Web archives (wars) are checked for /WEB-INF/beans.xml and
//     /WEB-INF/classes/META-INF/beans.xml. Every archive nested under
//     /WEB-INF/lib/*.jar is scanned recursively whether or not the war
//     itself carries a marker.
//   - Enterprise archives (ears) are not supported and are skipped without
//     error.
//
// Each marker found is registered with a [DescriptorRegistry] as a
// [Location] whose content is opened lazily. When an archive has at least one
// marker, every entry ending in ".class" is opened and passed to a
// [ClassIndexer], in archive order.
//
// The first failure from either consumer aborts the scan. Work already handed
// off is not rolled back.
package discovery
