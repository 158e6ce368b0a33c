package web

import "html/template"

// Page templates. Kept as Go source so the binary stays self-contained.
const indexTemplate = `<!DOCTYPE html>
<html>
<head><title>Flight Calendar</title></head>
<body>
<h1>Flight to Calendar</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form action="/create_event" method="post">
  <label>Flight number <input type="text" name="flight_number" required></label>
  <label>Date <input type="date" name="flight_date" required></label>
  <button type="submit">Find flight</button>
</form>
<p><a href="/manual_entry">Enter flight details manually</a></p>
</body>
</html>`

const selectTemplate = `<!DOCTYPE html>
<html>
<head><title>Select Flight</title></head>
<body>
<h1>Select your flight</h1>
{{range $i, $f := .Flights}}
<form action="/create_event/{{$i}}" method="post">
  <fieldset>
    <legend>{{$f.FlightNumber}} {{$f.OriginAirportCode}} &rarr; {{$f.DestinationAirportCode}}{{if $f.IsGuess}} (estimated from schedule history){{end}}</legend>
    <label>Flight number <input type="text" name="flight_number" value="{{$f.FlightNumber}}"></label>
    <label>Airline <input type="text" name="airline_name" value="{{$f.AirlineName}}"></label>
    <label>From <input type="text" name="origin_airport" value="{{$f.OriginAirport}}"></label>
    <label>Code <input type="text" name="origin_airport_code" value="{{$f.OriginAirportCode}}"></label>
    <label>To <input type="text" name="destination_airport" value="{{$f.DestinationAirport}}"></label>
    <label>Code <input type="text" name="destination_airport_code" value="{{$f.DestinationAirportCode}}"></label>
    <label>Departs <input type="text" name="scheduled_departure" value="{{$f.NiceDeparture}}"></label>
    <label>Arrives <input type="text" name="scheduled_arrival" value="{{$f.NiceArrival}}"></label>
    <label>Origin timezone <input type="text" name="origin_timezone" value="{{$f.OriginTimezone}}"></label>
    <label>Destination timezone <input type="text" name="destination_timezone" value="{{$f.DestinationTimezone}}"></label>
    <button type="submit">Download calendar file</button>
  </fieldset>
</form>
{{end}}
<p><a href="/">Search again</a></p>
</body>
</html>`

const manualTemplate = `<!DOCTYPE html>
<html>
<head><title>Manual Flight Entry</title></head>
<body>
<h1>Enter flight details</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form action="/create_manual_event" method="post">
  <label>Flight number <input type="text" name="flight_number" required></label>
  <label>Airline <input type="text" name="airline_name" required></label>
  <label>From <input type="text" name="origin_airport" required></label>
  <label>Origin code <input type="text" name="origin_airport_code" pattern="[A-Z]{3}" required></label>
  <label>To <input type="text" name="destination_airport" required></label>
  <label>Destination code <input type="text" name="destination_airport_code" pattern="[A-Z]{3}" required></label>
  <label>Departs <input type="datetime-local" name="scheduled_departure" required></label>
  <label>Arrives <input type="datetime-local" name="scheduled_arrival" required></label>
  <label>Origin timezone
    <select name="origin_timezone">
      <option value=""></option>
      {{range .Timezones}}<option value="{{.Name}}">{{.Display}}</option>{{end}}
    </select>
  </label>
  <label>Destination timezone
    <select name="destination_timezone">
      <option value=""></option>
      {{range .Timezones}}<option value="{{.Name}}">{{.Display}}</option>{{end}}
    </select>
  </label>
  <button type="submit">Download calendar file</button>
</form>
<p><a href="/">Back to search</a></p>
</body>
</html>`

func mustParseTemplates() *template.Template {
	t := template.New("pages")
	template.Must(t.New("index").Parse(indexTemplate))
	template.Must(t.New("select").Parse(selectTemplate))
	template.Must(t.New("manual").Parse(manualTemplate))
	return t
}
