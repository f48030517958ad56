// Package timezone holds the property's local clock.
//
// Stay dates, audit timestamps and response formatting all read the location
// configured by APP_TIMEZONE (an IANA name such as "Asia/Kolkata"). The
// location is loaded when the package is imported and defaults to UTC.
//
//	now := timezone.Now()
//	nights := timezone.CalendarDays(arrival, departure)
package timezone
