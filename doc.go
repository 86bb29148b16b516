// Package beanscan discovers bean descriptor marker files and class files in
// in-memory Java deployment archives.
//
// This package provides a one-call API through [Discover]. The archive model
// lives in the [archive] subpackage and the scanner in [discovery].
//
// # Quick Start
//
// Build an archive and collect its descriptor locations:
//
//	war := archive.New("app.war", archive.KindWeb)
//	war.AddBytes("/WEB-INF/beans.xml", beansXML)
//	war.AddBytes("/WEB-INF/classes/com/acme/Greeter.class", greeter)
//
//	locations := beanscan.NewCollector()
//	stats, err := beanscan.Discover(war, locations,
//	    beanscan.ClassIndexerFunc(func(path string, r io.Reader) error {
//	        return index.Add(path, r)
//	    }),
//	    beanscan.WithLogger(slog.Default()),
//	)
//
// # Archive Layouts
//
// Library archives are scanned when they contain /META-INF/beans.xml. Web
// archives are scanned when they contain /WEB-INF/beans.xml or
// /WEB-INF/classes/META-INF/beans.xml, and every archive nested under
// /WEB-INF/lib is scanned on its own terms. Enterprise archives are skipped.
package beanscan
