package view

// The pages are plain server-rendered bootstrap, kept as Go string templates
// the same way the rest of the app keeps its HTML in code.
var pageTemplates = map[string]string{
	"head": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - Pokémon Teams</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet">
</head>
<body class="bg-light">
{{if .User}}
<nav class="navbar navbar-expand navbar-dark bg-dark px-3 mb-4">
    <a class="navbar-brand" href="{{if .User.IsAdmin}}/admin{{else}}/userDashboard{{end}}">Pokémon Teams</a>
    <div class="navbar-nav">
        {{if .User.IsAdmin}}
        <a class="nav-link" href="/admin">Users</a>
        <a class="nav-link" href="/admin/typeManagement">Types</a>
        <a class="nav-link" href="/admin/moveManagement">Moves</a>
        <a class="nav-link" href="/admin/itemManagement">Items</a>
        <a class="nav-link" href="/admin/pokemonManagement">Pokémon</a>
        <a class="nav-link" href="/admin/teamsManagement">Teams</a>
        {{else}}
        <a class="nav-link" href="/userDashboard">My Teams</a>
        {{end}}
    </div>
    <div class="ms-auto d-flex align-items-center">
        <span class="navbar-text me-3">{{.User.Name}}</span>
        <form action="/logout" method="POST" class="d-inline">
            <button type="submit" class="btn btn-outline-light btn-sm">Log out</button>
        </form>
    </div>
</nav>
{{end}}
<div class="container">`,

	"foot": `</div>
</body>
</html>`,

	"login": `{{template "head" .}}
<div class="row justify-content-center mt-5">
    <div class="col-12 col-md-6 col-xl-4">
        <div class="card shadow border-0">
            <div class="card-header bg-primary text-white text-center py-3"><h4 class="mb-0">Sign in</h4></div>
            <div class="card-body p-4">
                {{if .Error}}<div class="alert alert-danger">{{.Error}}</div>{{end}}
                <form action="/login" method="POST">
                    <div class="mb-3">
                        <label class="form-label">Name</label>
                        <input type="text" class="form-control" name="name" value="{{.Name}}" required>
                    </div>
                    <div class="mb-3">
                        <label class="form-label">Password</label>
                        <input type="password" class="form-control" name="password" required>
                    </div>
                    <button type="submit" class="btn btn-primary w-100">Sign in</button>
                </form>
                <div class="mt-3 text-center">No account? <a href="/register">Register</a></div>
            </div>
        </div>
    </div>
</div>
{{template "foot" .}}`,

	"register": `{{template "head" .}}
<div class="row justify-content-center mt-5">
    <div class="col-12 col-md-6 col-xl-4">
        <div class="card shadow border-0">
            <div class="card-header bg-primary text-white text-center py-3"><h4 class="mb-0">Register</h4></div>
            <div class="card-body p-4">
                {{if .Error}}<div class="alert alert-danger">{{.Error}}</div>{{end}}
                <form action="/register" method="POST">
                    <div class="mb-3">
                        <label class="form-label">Name</label>
                        <input type="text" class="form-control" name="name" value="{{.Name}}" required>
                    </div>
                    <div class="mb-3">
                        <label class="form-label">Email</label>
                        <input type="email" class="form-control" name="email" value="{{.Email}}" required>
                    </div>
                    <div class="mb-3">
                        <label class="form-label">Password</label>
                        <input type="password" class="form-control" name="password" required>
                    </div>
                    <button type="submit" class="btn btn-primary w-100">Create account</button>
                </form>
                <div class="mt-3 text-center">Already registered? <a href="/login">Sign in</a></div>
            </div>
        </div>
    </div>
</div>
{{template "foot" .}}`,

	"dashboard": `{{template "head" .}}
<h2 class="mb-4">{{.Title}}</h2>
{{if .Error}}
<div class="alert alert-danger">{{.Error}}</div>
{{else}}
{{if .FormError}}<div class="alert alert-danger">{{.FormError}}</div>{{end}}

<div class="row">
    <div class="col-12 col-lg-7">
        <table class="table table-hover bg-white shadow-sm">
            <thead><tr><th>ID</th><th>Name</th><th class="text-end">Actions</th></tr></thead>
            <tbody>
            {{range .Dashboard.Teams}}
            <tr>
                <td>{{.ID}}</td>
                <td>{{.Name}}</td>
                <td class="text-end">
                    <a class="btn btn-outline-secondary btn-sm" href="{{$.BasePath}}/teamPokemonManagement/{{.ID}}">Roster</a>
                    <a class="btn btn-outline-primary btn-sm" href="{{$.BasePath}}?edit={{.ID}}">Rename</a>
                    <form action="{{$.BasePath}}/deleteTeam/{{.ID}}" method="POST" class="d-inline"
                          onsubmit="return confirm('Delete team {{.Name}}?');">
                        <button type="submit" class="btn btn-outline-danger btn-sm">Delete</button>
                    </form>
                </td>
            </tr>
            {{else}}
            <tr><td colspan="3" class="text-muted">No teams yet.</td></tr>
            {{end}}
            </tbody>
        </table>

        <div class="card shadow-sm mb-4">
            <div class="card-body">
                <h5 class="card-title">{{if .SelectedTeam}}Rename team{{else}}New team{{end}}</h5>
                <form action="{{.BasePath}}/saveTeam" method="POST" class="row g-2">
                    {{if .SelectedTeam}}<input type="hidden" name="teamId" value="{{.SelectedTeam.ID}}">{{end}}
                    <div class="col-8">
                        <input type="text" class="form-control" name="name" required
                               value="{{if .SelectedTeam}}{{.SelectedTeam.Name}}{{end}}" placeholder="Team name">
                    </div>
                    <div class="col-4">
                        <button type="submit" class="btn btn-primary w-100">Save</button>
                    </div>
                </form>
            </div>
        </div>
    </div>

    <div class="col-12 col-lg-5">
        <div class="card shadow-sm">
            <div class="card-body">
                <h5 class="card-title">Add Pokémon to a team</h5>
                <form action="{{.BasePath}}" method="GET" class="mb-2">
                    <input type="text" class="form-control" name="q" value="{{.Query}}"
                           placeholder="Search Pokémon" autocomplete="off"
                           onkeyup="if (event.key === 'Enter') this.form.submit();">
                </form>
                {{if .Suggestions}}
                <ul class="list-group mb-2">
                    {{range .Suggestions}}
                    <li class="list-group-item p-0">
                        <a class="d-block px-3 py-2 text-decoration-none" href="{{$.BasePath}}?pokemon={{.Name}}">{{.Name}}</a>
                    </li>
                    {{end}}
                </ul>
                {{end}}
                <form action="{{.BasePath}}/addPokemon" method="POST" class="row g-2">
                    <input type="hidden" name="pokemon" value="{{.ChosenName}}">
                    <div class="col-12">
                        <input type="text" class="form-control" value="{{.ChosenName}}" placeholder="No Pokémon selected" readonly>
                    </div>
                    <div class="col-6">
                        <select class="form-select" name="teamId" required>
                            <option value="">Team...</option>
                            {{range .Dashboard.Teams}}<option value="{{.ID}}">{{.Name}}</option>{{end}}
                        </select>
                    </div>
                    <div class="col-6">
                        <input type="text" class="form-control" name="nickname" value="{{.Nickname}}" placeholder="Nickname">
                    </div>
                    <div class="col-12">
                        <button type="submit" class="btn btn-success w-100">Add to team</button>
                    </div>
                </form>
            </div>
        </div>
    </div>
</div>
{{end}}
{{template "foot" .}}`,

	"roster": `{{template "head" .}}
<h2 class="mb-4">Team roster</h2>
{{if .Error}}<div class="alert alert-danger">{{.Error}}</div>{{end}}
{{if .FormError}}<div class="alert alert-warning">{{.FormError}}</div>{{end}}
{{if and (not .Error) (not .Browser.Entries)}}
<div class="alert alert-info">No Pokémon in this team yet.</div>
{{end}}
<div class="row g-4">
    {{range .Browser.Entries}}
    <div class="col-12 col-sm-6 col-md-4 col-lg-3">
        <div class="card h-100 shadow position-relative">
            <div class="position-relative d-flex justify-content-center align-items-center bg-white" style="height:180px">
                <img src="{{$.Browser.SpriteURL .}}" alt="{{.DisplayName}}" style="object-fit:contain;height:140px;max-width:100%">
                {{with $.Browser.ItemIconURL .}}
                <img src="{{.}}" alt="Held item" class="position-absolute bg-white border rounded-circle"
                     style="width:48px;height:48px;bottom:8px;right:16px">
                {{end}}
            </div>
            <div class="card-body d-flex flex-column">
                <h5 class="card-title text-center fw-bold mb-1">{{.DisplayName}}</h5>
                <h6 class="card-subtitle text-muted text-center mb-3">ID: {{.ID}}</h6>
                <div class="mb-2 small">
                    <div>Ability: <strong>{{if .Ability}}{{.Ability}}{{else}}&mdash;{{end}}</strong></div>
                    <div>Nature: <strong>{{if .Nature}}{{.Nature}}{{else}}&mdash;{{end}}</strong></div>
                    <div>Item: <strong>{{if .Item}}{{.Item}}{{else}}&mdash;{{end}}</strong></div>
                </div>
                <div class="mb-2 small">
                    <strong>EVs:</strong>
                    HP {{.EVHP}} &bull; Atk {{.EVAtk}} &bull; Def {{.EVDef}}<br>
                    SpA {{.EVSpA}} &bull; SpD {{.EVSpD}} &bull; Spe {{.EVSpe}}
                </div>
                <div class="mb-3 small">
                    <strong>IVs:</strong>
                    HP {{.IVHP}} &bull; Atk {{.IVAtk}} &bull; Def {{.IVDef}}<br>
                    SpA {{.IVSpA}} &bull; SpD {{.IVSpD}} &bull; Spe {{.IVSpe}}
                </div>
                <div class="mt-auto d-flex justify-content-between">
                    <a class="btn btn-outline-primary btn-sm" href="/teamPokemonManagement/modifyPokemon/{{.ID}}">Modify</a>
                    <form action="{{$.Path}}/remove/{{.ID}}" method="POST"
                          onsubmit="return confirm('Remove {{.DisplayName}} from the team?');">
                        <button type="submit" class="btn btn-outline-danger btn-sm">Remove</button>
                    </form>
                </div>
            </div>
        </div>
    </div>
    {{end}}
</div>
{{template "foot" .}}`,

	"editor": `{{template "head" .}}
<h2 class="mb-4">Modify team Pokémon</h2>
{{if .Error}}
<div class="alert alert-danger">{{.Error}}</div>
{{else}}
{{if .FormError}}<div class="alert alert-danger">{{.FormError}}</div>{{end}}
<div class="card shadow-sm">
    <div class="card-body">
        <div class="d-flex align-items-center mb-3">
            {{if .Editor.SpriteURL}}<img src="{{.Editor.SpriteURL}}" alt="{{.Editor.SpeciesName}}" style="height:64px" class="me-3">{{end}}
            <h5 class="mb-0">{{.Editor.SpeciesName}}</h5>
        </div>
        <form action="/teamPokemonManagement/modifyPokemon/{{.Editor.EntryID}}" method="POST">
            <div class="mb-3">
                <label class="form-label">Nickname</label>
                <input type="text" class="form-control" name="nickname" value="{{.Editor.Draft.Nickname}}">
            </div>
            <div class="mb-3">
                <label class="form-label">Item</label>
                <div class="d-flex align-items-center">
                    <select class="form-select" name="itemId">
                        <option value="">No item</option>
                        {{$item := optID .Editor.Draft.ItemID}}
                        {{range .Editor.Items}}
                        <option value="{{.ID}}" {{if eq $item (printf "%d" .ID)}}selected{{end}}>{{.Name}}</option>
                        {{end}}
                    </select>
                    {{with .Editor.HeldItemIconURL}}
                    <img src="{{.}}" alt="Held item" style="height:32px" class="ms-2">
                    {{end}}
                </div>
            </div>
            <div class="mb-3">
                <label class="form-label">Ability</label>
                <select class="form-select" name="abilityId">
                    <option value="">No ability</option>
                    {{$ability := optID .Editor.Draft.AbilityID}}
                    {{range .Editor.Abilities}}
                    <option value="{{.ID}}" {{if eq $ability (printf "%d" .ID)}}selected{{end}}>{{.Name}}</option>
                    {{end}}
                </select>
            </div>
            <div class="mb-3">
                <label class="form-label">Nature</label>
                <select class="form-select" name="natureId">
                    <option value="">No nature</option>
                    {{$nature := optID .Editor.Draft.NatureID}}
                    {{range .Editor.Natures}}
                    <option value="{{.ID}}" {{if eq $nature (printf "%d" .ID)}}selected{{end}}>{{.Name}}</option>
                    {{end}}
                </select>
            </div>
            <div class="row">
                <div class="col">
                    <h6>EVs</h6>
                    {{range .Editor.EVFields}}
                    <div class="mb-2">
                        <label class="form-label mb-0">{{statLabel .}}</label>
                        <input type="range" class="form-range" min="0" max="250" name="{{.}}"
                               value="{{$.Editor.Stat .}}" oninput="this.nextElementSibling.textContent = this.value">
                        <span>{{$.Editor.Stat .}}</span>
                    </div>
                    {{end}}
                </div>
                <div class="col">
                    <h6>IVs</h6>
                    {{range .Editor.IVFields}}
                    <div class="mb-2">
                        <label class="form-label mb-0">{{statLabel .}}</label>
                        <input type="range" class="form-range" min="0" max="250" name="{{.}}"
                               value="{{$.Editor.Stat .}}" oninput="this.nextElementSibling.textContent = this.value">
                        <span>{{$.Editor.Stat .}}</span>
                    </div>
                    {{end}}
                </div>
            </div>
            <div class="mt-3 d-flex justify-content-between">
                <a class="btn btn-outline-secondary" href="{{.BackURL}}">Back</a>
                <button type="submit" class="btn btn-primary">Save changes</button>
            </div>
        </form>
    </div>
</div>
{{end}}
{{template "foot" .}}`,

	"admin": `{{template "head" .}}
<h2 class="mb-4">{{.Title}}</h2>
{{if .Error}}
<div class="alert alert-danger">{{.Error}}</div>
{{else}}
{{if .FormError}}<div class="alert alert-danger">{{.FormError}}</div>{{end}}

<table class="table table-hover bg-white shadow-sm">
    <thead>
        <tr>
            <th>ID</th>
            {{range .Fields}}{{if ne .Type "password"}}<th>{{.Label}}</th>{{end}}{{end}}
            <th class="text-end">Actions</th>
        </tr>
    </thead>
    <tbody>
    {{range $record := .Records}}
    <tr>
        <td>{{$record.ID}}</td>
        {{range $f := $.Fields}}{{if ne $f.Type "password"}}<td>{{cell $record $f}}</td>{{end}}{{end}}
        <td class="text-end">
            <a class="btn btn-outline-primary btn-sm" href="{{$.BasePath}}?edit={{$record.ID}}">Edit</a>
            {{if $.CanDelete}}
            <form action="{{$.BasePath}}/delete/{{$record.ID}}" method="POST" class="d-inline"
                  onsubmit="return confirm('Delete this record?');">
                <button type="submit" class="btn btn-outline-danger btn-sm">Delete</button>
            </form>
            {{end}}
        </td>
    </tr>
    {{else}}
    <tr><td colspan="99" class="text-muted">Nothing here yet.</td></tr>
    {{end}}
    </tbody>
</table>

{{if or .Editing .CanCreate}}
<div class="card shadow-sm mb-4">
    <div class="card-body">
        <h5 class="card-title">{{if .Editing}}Edit {{.Entity}}{{else}}New {{.Entity}}{{end}}</h5>
        <form action="{{if .Editing}}{{.BasePath}}/update/{{.Editing.ID}}{{else}}{{.BasePath}}/create{{end}}"
              method="POST" enctype="multipart/form-data">
            {{range $f := .Fields}}
            <div class="mb-3">
                {{if eq $f.Type "checkbox"}}
                <div class="form-check">
                    <input type="checkbox" class="form-check-input" name="{{$f.Name}}" value="true"
                           {{if and $.Editing (hasOpt $.Editing $f.Name "yes")}}checked{{end}}>
                    <label class="form-check-label">{{$f.Label}}</label>
                </div>
                {{else}}
                <label class="form-label">{{$f.Label}}</label>
                {{if eq $f.Type "select"}}
                <select class="form-select" name="{{$f.Name}}">
                    <option value="">-</option>
                    {{range $o := $f.Options}}
                    <option value="{{$o.Value}}" {{if and $.Editing (hasOpt $.Editing $f.Name $o.Value)}}selected{{end}}>{{$o.Label}}</option>
                    {{end}}
                </select>
                {{else if eq $f.Type "multiselect"}}
                <select class="form-select" name="{{$f.Name}}" multiple size="6">
                    {{range $o := $f.Options}}
                    <option value="{{$o.Value}}" {{if and $.Editing (hasOpt $.Editing $f.Name $o.Value)}}selected{{end}}>{{$o.Label}}</option>
                    {{end}}
                </select>
                {{else if eq $f.Type "textarea"}}
                <textarea class="form-control" name="{{$f.Name}}" rows="3">{{if $.Editing}}{{cell $.Editing $f}}{{end}}</textarea>
                {{else if eq $f.Type "file"}}
                <input type="file" class="form-control" name="{{$f.Name}}">
                {{else}}
                <input type="{{$f.Type}}" class="form-control" name="{{$f.Name}}"
                       value="{{if $.Editing}}{{cell $.Editing $f}}{{end}}">
                {{end}}
                {{end}}
            </div>
            {{end}}
            <div class="d-flex justify-content-between">
                {{if .Editing}}<a class="btn btn-outline-secondary" href="{{.BasePath}}">Cancel</a>{{else}}<span></span>{{end}}
                <button type="submit" class="btn btn-primary">Save</button>
            </div>
        </form>
    </div>
</div>
{{end}}
{{end}}
{{template "foot" .}}`,
}
