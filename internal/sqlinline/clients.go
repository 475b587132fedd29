package sqlinline

const QListClients = `--sql 1c7e5b90-3d2a-4f6c-8e1b-9a4d7c2f5e83
select id, name, logo, subtitle, description, sort_order, created_at, updated_at
from clients
order by sort_order asc, created_at asc;
`

const QSelectClientByID = `--sql 6d1f9c34-8b5e-4a2d-b7f0-3c8e1a6d9f42
select id, name, logo, subtitle, description, sort_order, created_at, updated_at
from clients
where id = $1::text
limit 1;
`

const QInsertClient = `--sql e82a4f17-6c9d-4b3e-a5f8-1d7b0c4e2a96
insert into clients(id, name, logo, subtitle, description, sort_order, created_at, updated_at)
values ($1::text, $2::text, $3::text, $4::text, $5::text, $6::int, now(), now())
returning created_at, updated_at;
`

const QUpdateClient = `--sql 4b8d2e61-9f3c-4a7b-8d0e-5c1f6b9a3e27
update clients
set name = coalesce($2::text, name),
    logo = coalesce($3::text, logo),
    subtitle = coalesce($4::text, subtitle),
    description = coalesce($5::text, description),
    sort_order = coalesce($6::int, sort_order),
    updated_at = now()
where id = $1::text
returning id, name, logo, subtitle, description, sort_order, created_at, updated_at;
`

const QDeleteClient = `--sql 7f3b6a58-2d1e-4c9f-b4a7-8e0d5f2c6b19
delete from clients
where id = $1::text;
`
